package model

import (
	"time"

	"gorm.io/datatypes"
)

// ConversationSnapshot persists the full profile as JSON so the dialog
// engine's state shape can evolve without migrations.
type ConversationSnapshot struct {
	Id             uint           `gorm:"primaryKey;autoIncrement"`
	ConversationID string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserId         uint           `gorm:"index"`
	Profile        datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (ConversationSnapshot) TableName() string {
	return "conversation_snapshots"
}
