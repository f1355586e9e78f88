package service

import (
	"context"
	"time"

	"restobot-be/internal/entity"
	"restobot-be/internal/repository/specification"
	"restobot-be/internal/repository/unitofwork"
	"restobot-be/pkg/bot"
	"restobot-be/pkg/store"
)

type IOrderService interface {
	bot.OrderPlacer
}

type orderService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewOrderService(uowFactory unitofwork.RepositoryFactory) IOrderService {
	return &orderService{uowFactory: uowFactory}
}

// CreateOrder persists the cart as an order with its lines in one
// transaction. The total is recomputed server side from the lines.
func (s *orderService) CreateOrder(ctx context.Context, userID uint, lines []store.CartLine, deliveryMethod string) (*store.OrderSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	var total float64
	items := make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		total += float64(line.Quantity) * line.UnitPrice
		items = append(items, entity.OrderItem{
			MenuItemId: line.ItemID,
			ItemName:   line.ItemName,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
		})
	}

	order := &entity.Order{
		UserId:         userID,
		TotalAmount:    total,
		Status:         entity.OrderStatusPlaced,
		DeliveryMethod: deliveryMethod,
		OrderTime:      time.Now(),
		Items:          items,
	}
	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	summary := toOrderSummary(order, "")
	return &summary, nil
}

func (s *orderService) ListUserOrders(ctx context.Context, userID uint) ([]store.OrderSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	orders, err := uow.OrderRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userID},
		specification.StatusNot{Status: string(entity.OrderStatusCancelled)},
		specification.StatusNot{Status: string(entity.OrderStatusDelivered)},
		specification.OrderBy{Field: "order_time", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	summaries := make([]store.OrderSummary, 0, len(orders))
	for _, order := range orders {
		status, err := s.paymentStatus(ctx, uow, order.Id)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, toOrderSummary(order, status))
	}
	return summaries, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID uint) (*store.OrderSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx,
		specification.ByID{ID: orderID},
		specification.OwnedBy{UserID: userID},
	)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	status, err := s.paymentStatus(ctx, uow, order.Id)
	if err != nil {
		return nil, err
	}
	summary := toOrderSummary(order, status)
	return &summary, nil
}

// CancelOrder flips a still-cancellable order to cancelled. Delivered and
// already-cancelled orders report false.
func (s *orderService) CancelOrder(ctx context.Context, userID, orderID uint) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx,
		specification.ByID{ID: orderID},
		specification.OwnedBy{UserID: userID},
	)
	if err != nil {
		return false, err
	}
	if order == nil || order.Status != entity.OrderStatusPlaced {
		return false, nil
	}
	if err := uow.OrderRepository().UpdateStatus(ctx, orderID, entity.OrderStatusCancelled); err != nil {
		return false, err
	}
	return true, nil
}

func (s *orderService) paymentStatus(ctx context.Context, uow unitofwork.UnitOfWork, orderID uint) (string, error) {
	payment, err := uow.PaymentRepository().FindOne(ctx, specification.ByOrder{OrderID: orderID})
	if err != nil {
		return "", err
	}
	if payment == nil {
		return "", nil
	}
	return string(payment.Status), nil
}

func toOrderSummary(o *entity.Order, paymentStatus string) store.OrderSummary {
	return store.OrderSummary{
		ID:            o.Id,
		Status:        string(o.Status),
		TotalAmount:   o.TotalAmount,
		PaymentStatus: paymentStatus,
	}
}
