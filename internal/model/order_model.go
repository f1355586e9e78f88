package model

import "time"

type Order struct {
	Id             uint        `gorm:"primaryKey;autoIncrement"`
	UserId         uint        `gorm:"not null;index"`
	TotalAmount    float64     `gorm:"type:decimal(10,2);not null"`
	Status         string      `gorm:"type:varchar(50);not null;default:'placed';index"`
	DeliveryMethod string      `gorm:"type:varchar(50)"`
	OrderTime      time.Time   `gorm:"autoCreateTime;index"`
	Items          []OrderItem `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	Id         uint    `gorm:"primaryKey;autoIncrement"`
	OrderId    uint    `gorm:"not null;index"`
	MenuItemId uint    `gorm:"not null"`
	ItemName   string  `gorm:"type:varchar(255);not null"`
	Quantity   int     `gorm:"not null"`
	UnitPrice  float64 `gorm:"type:decimal(10,2);not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

type Payment struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	OrderId   uint      `gorm:"not null;uniqueIndex"`
	Amount    float64   `gorm:"type:decimal(10,2);not null"`
	Method    string    `gorm:"type:varchar(50);not null"`
	Status    string    `gorm:"type:varchar(50);not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
