package contract

import (
	"context"

	"restobot-be/internal/entity"
	"restobot-be/internal/repository/specification"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	Update(ctx context.Context, reservation *entity.Reservation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Reservation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reservation, error)
}

type ConversationRepository interface {
	// Save upserts the snapshot keyed by conversation identifier.
	Save(ctx context.Context, snapshot *entity.ConversationSnapshot) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConversationSnapshot, error)
}
