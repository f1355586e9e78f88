package nlu

import "context"

// The dialog engine treats language understanding as an opaque external
// classifier: free text in, a top intent plus raw entities out.

// Entity is one extraction from the classifier, not yet validated.
type Entity struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Result is the classifier's verdict for a single utterance. TopIntent is
// IntentNone when nothing matched.
type Result struct {
	TopIntent string   `json:"topIntent"`
	Entities  []Entity `json:"entities"`
}

// IntentNone is the sentinel the classifier returns for unmatched input.
const IntentNone = "None"

// Classifier resolves free text into an intent and entities.
type Classifier interface {
	Classify(ctx context.Context, text string) (*Result, error)
}

// Entity categories the engine knows how to normalize.
const (
	CategoryRestaurantName = "restaurantName"
	CategoryCuisine        = "cuisine"
	CategoryUserLocation   = "userLocation"
	CategoryPriceRange     = "priceRange"
	CategoryRatingValue    = "ratingValue"
	CategoryDate           = "date"
	CategoryTime           = "time"
	CategoryPartySize      = "partySize"
	CategoryMenuItem       = "menuItem"
	CategoryQuantity       = "quantity"
	CategoryOrderID        = "orderID"
	CategoryReservationID  = "reservationID"
	CategoryDeliveryMethod = "deliveryMethod"
	CategoryDietType       = "dietType"
)
