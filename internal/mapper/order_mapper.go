package mapper

import (
	"restobot-be/internal/entity"
	"restobot-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}
	items := make([]entity.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, entity.OrderItem{
			Id:         it.Id,
			OrderId:    it.OrderId,
			MenuItemId: it.MenuItemId,
			ItemName:   it.ItemName,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
		})
	}
	return &entity.Order{
		Id:             o.Id,
		UserId:         o.UserId,
		TotalAmount:    o.TotalAmount,
		Status:         entity.OrderStatus(o.Status),
		DeliveryMethod: o.DeliveryMethod,
		OrderTime:      o.OrderTime,
		Items:          items,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}
	items := make([]model.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, model.OrderItem{
			Id:         it.Id,
			OrderId:    it.OrderId,
			MenuItemId: it.MenuItemId,
			ItemName:   it.ItemName,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
		})
	}
	return &model.Order{
		Id:             o.Id,
		UserId:         o.UserId,
		TotalAmount:    o.TotalAmount,
		Status:         string(o.Status),
		DeliveryMethod: o.DeliveryMethod,
		OrderTime:      o.OrderTime,
		Items:          items,
	}
}

func (m *OrderMapper) ToEntities(models []*model.Order) []*entity.Order {
	entities := make([]*entity.Order, 0, len(models))
	for _, mo := range models {
		entities = append(entities, m.ToEntity(mo))
	}
	return entities
}

type PaymentMapper struct{}

func NewPaymentMapper() *PaymentMapper {
	return &PaymentMapper{}
}

func (m *PaymentMapper) ToEntity(p *model.Payment) *entity.Payment {
	if p == nil {
		return nil
	}
	return &entity.Payment{
		Id:        p.Id,
		OrderId:   p.OrderId,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    entity.PaymentStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PaymentMapper) ToModel(p *entity.Payment) *model.Payment {
	if p == nil {
		return nil
	}
	return &model.Payment{
		Id:        p.Id,
		OrderId:   p.OrderId,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
