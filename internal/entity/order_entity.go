package entity

import "time"

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	Id             uint
	UserId         uint
	TotalAmount    float64
	Status         OrderStatus
	DeliveryMethod string
	OrderTime      time.Time
	Items          []OrderItem
}

type OrderItem struct {
	Id         uint
	OrderId    uint
	MenuItemId uint
	ItemName   string
	Quantity   int
	UnitPrice  float64
}

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Payment struct {
	Id        uint
	OrderId   uint
	Amount    float64
	Method    string
	Status    PaymentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
