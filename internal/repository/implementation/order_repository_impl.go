package implementation

import (
	"context"
	"errors"

	"restobot-be/internal/entity"
	"restobot-be/internal/mapper"
	"restobot-be/internal/model"
	"restobot-be/internal/repository/contract"
	"restobot-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entity.Order) error {
	modelOrder := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Create(modelOrder).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(modelOrder)
	return nil
}

func (r *OrderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	var modelOrder model.Order
	query := applySpecifications(r.db.WithContext(ctx).Preload("Items"), specs...)

	if err := query.First(&modelOrder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelOrder), nil
}

func (r *OrderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	var modelOrders []*model.Order
	query := applySpecifications(r.db.WithContext(ctx).Preload("Items"), specs...)

	if err := query.Find(&modelOrders).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelOrders), nil
}

func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status entity.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaymentMapper
}

func NewPaymentRepository(db *gorm.DB) contract.PaymentRepository {
	return &PaymentRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaymentMapper(),
	}
}

func (r *PaymentRepositoryImpl) Upsert(ctx context.Context, payment *entity.Payment) error {
	modelPayment := r.mapper.ToModel(payment)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "method", "status", "updated_at"}),
		}).
		Create(modelPayment).Error
	if err != nil {
		return err
	}
	*payment = *r.mapper.ToEntity(modelPayment)
	return nil
}

func (r *PaymentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error) {
	var modelPayment model.Payment
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelPayment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelPayment), nil
}

func (r *PaymentRepositoryImpl) UpdateStatus(ctx context.Context, orderID uint, from, to entity.PaymentStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("order_id = ? AND status = ?", orderID, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
