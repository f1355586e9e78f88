package specification

import "gorm.io/gorm"

// DateOnOrAfter keeps reservations whose date has not passed. Dates are
// stored as YYYY-MM-DD strings, which compare correctly lexicographically.
type DateOnOrAfter struct {
	Date string
}

func (s DateOnOrAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reservation_date >= ?", s.Date)
}

// ByConversationID filters snapshots by their conversation identifier
type ByConversationID struct {
	ConversationID string
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}
