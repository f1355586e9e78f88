package model

import "time"

type Reservation struct {
	Id              uint      `gorm:"primaryKey;autoIncrement"`
	UserId          uint      `gorm:"not null;index"`
	RestaurantId    uint      `gorm:"not null;index"`
	ReservationDate string    `gorm:"type:varchar(10);not null;index"`
	ReservationTime string    `gorm:"type:varchar(5);not null"`
	PartySize       int       `gorm:"not null"`
	Notes           string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(50);not null;default:'confirmed';index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Reservation) TableName() string {
	return "reservations"
}
