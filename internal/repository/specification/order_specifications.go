package specification

import "gorm.io/gorm"

// ByStatus filters by lifecycle state
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// StatusNot excludes a lifecycle state
type StatusNot struct {
	Status string
}

func (s StatusNot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status <> ?", s.Status)
}

// ByOrder filters payment rows by their order
type ByOrder struct {
	OrderID uint
}

func (s ByOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_id = ?", s.OrderID)
}
