package unitofwork

import (
	"context"

	"restobot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	RestaurantRepository() contract.RestaurantRepository
	MenuItemRepository() contract.MenuItemRepository
	ItemReviewRepository() contract.ItemReviewRepository
	OrderRepository() contract.OrderRepository
	PaymentRepository() contract.PaymentRepository
	ReservationRepository() contract.ReservationRepository
	ConversationRepository() contract.ConversationRepository
}
