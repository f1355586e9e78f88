package service

import (
	"context"
	"time"

	"restobot-be/internal/entity"
	"restobot-be/internal/repository/specification"
	"restobot-be/internal/repository/unitofwork"
	"restobot-be/pkg/bot"
)

// IPaymentService is a deterministic mock gateway: recording a payment is an
// upsert, never an external call.
type IPaymentService interface {
	bot.PaymentRecorder
}

type paymentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory) IPaymentService {
	return &paymentService{uowFactory: uowFactory}
}

func (s *paymentService) RecordPayment(ctx context.Context, orderID uint, amount float64, mode, status string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	payment := &entity.Payment{
		OrderId:   orderID,
		Amount:    amount,
		Method:    mode,
		Status:    entity.PaymentStatus(status),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	return uow.PaymentRepository().Upsert(ctx, payment)
}

// Status returns "" when the order has no payment row, or does not belong to
// the user.
func (s *paymentService) Status(ctx context.Context, userID, orderID uint) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx,
		specification.ByID{ID: orderID},
		specification.OwnedBy{UserID: userID},
	)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", nil
	}
	payment, err := uow.PaymentRepository().FindOne(ctx, specification.ByOrder{OrderID: orderID})
	if err != nil {
		return "", err
	}
	if payment == nil {
		return "", nil
	}
	return string(payment.Status), nil
}

// Refund flips a paid payment to refunded. Anything else reports false.
func (s *paymentService) Refund(ctx context.Context, orderID uint) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PaymentRepository().UpdateStatus(ctx, orderID, entity.PaymentStatusPaid, entity.PaymentStatusRefunded)
}
