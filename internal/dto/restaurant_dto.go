package dto

type RestaurantResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Cuisine    string  `json:"cuisine"`
	City       string  `json:"city"`
	Area       string  `json:"area"`
	PriceRange string  `json:"price_range"`
	Rating     float64 `json:"rating"`
}

type MenuItemResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	DietType    string  `json:"diet_type,omitempty"`
	Price       float64 `json:"price"`
}

type SearchRestaurantQuery struct {
	Cuisine    string  `query:"cuisine"`
	Location   string  `query:"location"`
	PriceRange string  `query:"price_range"`
	MinRating  float64 `query:"min_rating"`
}
