package contract

import (
	"context"

	"restobot-be/internal/entity"
	"restobot-be/internal/repository/specification"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id uint, status entity.OrderStatus) error
}

type PaymentRepository interface {
	// Upsert records a payment for an order, replacing any earlier attempt.
	Upsert(ctx context.Context, payment *entity.Payment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error)
	UpdateStatus(ctx context.Context, orderID uint, from, to entity.PaymentStatus) (bool, error)
}
