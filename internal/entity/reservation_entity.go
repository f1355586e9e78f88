package entity

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	Id              uint
	UserId          uint
	RestaurantId    uint
	RestaurantName  string
	ReservationDate string // YYYY-MM-DD
	ReservationTime string // HH:MM
	PartySize       int
	Notes           string
	Status          ReservationStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
