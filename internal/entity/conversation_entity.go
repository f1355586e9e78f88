package entity

import (
	"time"

	"restobot-be/pkg/store"
)

// ConversationSnapshot is the durable copy of a live conversation profile.
// The in-memory store remains authoritative for active turns; snapshots let
// operators inspect conversations and survive audits.
type ConversationSnapshot struct {
	Id             uint
	ConversationID string
	UserId         uint
	Profile        store.ConversationProfile
	UpdatedAt      time.Time
}
