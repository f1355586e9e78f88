package model

import "time"

type Restaurant struct {
	Id         uint      `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:varchar(255);not null;index"`
	Cuisine    string    `gorm:"type:varchar(100);not null;index"`
	City       string    `gorm:"type:varchar(100);not null"`
	Area       string    `gorm:"type:varchar(100)"`
	PriceRange string    `gorm:"type:varchar(50)"`
	Rating     float64   `gorm:"type:decimal(3,1);default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

type MenuItem struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	RestaurantId uint      `gorm:"not null;index"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	Description  string    `gorm:"type:text"`
	DietType     string    `gorm:"type:varchar(50)"`
	Price        float64   `gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

type ItemReview struct {
	Id         uint      `gorm:"primaryKey;autoIncrement"`
	MenuItemId uint      `gorm:"not null;index"`
	UserId     uint      `gorm:"not null;index"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (ItemReview) TableName() string {
	return "item_reviews"
}
