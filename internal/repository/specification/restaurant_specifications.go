package specification

import "gorm.io/gorm"

// NameLike matches a fuzzy, case-insensitive name. Conversational input
// rarely spells a restaurant exactly.
type NameLike struct {
	Name string
}

func (s NameLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name ILIKE ?", "%"+s.Name+"%")
}

// CuisineLike matches a fuzzy cuisine name
type CuisineLike struct {
	Cuisine string
}

func (s CuisineLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("cuisine ILIKE ?", "%"+s.Cuisine+"%")
}

// LocationLike matches either city or area
type LocationLike struct {
	Location string
}

func (s LocationLike) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Location + "%"
	return db.Where("city ILIKE ? OR area ILIKE ?", pattern, pattern)
}

// ByPriceRange matches the coarse price bucket
type ByPriceRange struct {
	PriceRange string
}

func (s ByPriceRange) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("price_range = ?", s.PriceRange)
}

// MinRating keeps restaurants at or above a threshold
type MinRating struct {
	Rating float64
}

func (s MinRating) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("rating >= ?", s.Rating)
}

// ByRestaurant filters menu items by owning restaurant
type ByRestaurant struct {
	RestaurantID uint
}

func (s ByRestaurant) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("restaurant_id = ?", s.RestaurantID)
}
