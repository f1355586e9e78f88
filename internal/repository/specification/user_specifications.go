package specification

import (
	"strings"

	"gorm.io/gorm"
)

// ByEmail matches the normalized (lowercased) email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", strings.ToLower(s.Email))
}
