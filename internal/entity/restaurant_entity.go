package entity

import "time"

type Restaurant struct {
	Id         uint
	Name       string
	Cuisine    string
	City       string
	Area       string
	PriceRange string
	Rating     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type MenuItem struct {
	Id           uint
	RestaurantId uint
	Name         string
	Description  string
	DietType     string
	Price        float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ItemReview feeds the recommendation ranking.
type ItemReview struct {
	Id         uint
	MenuItemId uint
	UserId     uint
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
