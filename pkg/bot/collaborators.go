package bot

import (
	"context"

	"restobot-be/pkg/store"
)

// The engine never touches a database directly. Flows talk to the domain
// through these narrow contracts; the service layer implements them.

// AuthResult is a successful login or registration.
type AuthResult struct {
	UserID uint
	Email  string
	Name   string
	Token  string
}

// Authenticator verifies or creates accounts. A nil result with a nil error
// means the credentials were rejected (or the email is taken on Register);
// the flow re-prompts instead of resetting.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
}

// MenuItem is a dish as flows present it. Price is authoritative.
type MenuItem struct {
	ID          uint
	Name        string
	Description string
	DietType    string
	Price       float64
	Restaurant  string
}

// SearchFilters narrows a restaurant search. Empty fields are ignored.
type SearchFilters struct {
	Cuisine    string
	Location   string
	PriceRange string
	MinRating  float64
}

// RestaurantDirectory resolves restaurants by fuzzy name or filters.
// FindRestaurant returns nil, nil when nothing matches.
type RestaurantDirectory interface {
	FindRestaurant(ctx context.Context, name string) (*store.RestaurantSummary, error)
	SearchRestaurants(ctx context.Context, f SearchFilters) ([]store.RestaurantSummary, error)
	ListRestaurants(ctx context.Context) ([]store.RestaurantSummary, error)
}

// MenuProvider serves menus and resolves single dishes within a restaurant.
// FindMenuItem returns nil, nil when the dish is not on that menu.
type MenuProvider interface {
	FindMenu(ctx context.Context, restaurantName string) ([]MenuItem, error)
	FindMenuItem(ctx context.Context, itemName, restaurantName string) (*MenuItem, error)
}

// OrderPlacer creates and inspects orders. CancelOrder reports false when the
// order does not exist or is not cancellable.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, userID uint, lines []store.CartLine, deliveryMethod string) (*store.OrderSummary, error)
	ListUserOrders(ctx context.Context, userID uint) ([]store.OrderSummary, error)
	GetOrder(ctx context.Context, userID, orderID uint) (*store.OrderSummary, error)
	CancelOrder(ctx context.Context, userID, orderID uint) (bool, error)
}

// PaymentRecorder settles and inspects payments. Status returns "" for an
// unknown order. Refund reports false when there is nothing to refund.
type PaymentRecorder interface {
	RecordPayment(ctx context.Context, orderID uint, amount float64, mode, status string) error
	Status(ctx context.Context, userID, orderID uint) (string, error)
	Refund(ctx context.Context, orderID uint) (bool, error)
}

// ReservationBook manages table reservations. List returns upcoming
// reservations only. Cancel and Modify report false for unknown IDs.
type ReservationBook interface {
	CreateReservation(ctx context.Context, userID uint, restaurantName, date, timeOfDay string, partySize int, notes string) (*store.ReservationSummary, error)
	ListReservations(ctx context.Context, userID uint) ([]store.ReservationSummary, error)
	CancelReservation(ctx context.Context, userID, reservationID uint) (bool, error)
	ModifyReservation(ctx context.Context, userID, reservationID uint, date, timeOfDay string, partySize int) (bool, error)
}

// Recommender surfaces the best-reviewed dishes, optionally per diet type.
type Recommender interface {
	Recommend(ctx context.Context, category string) ([]MenuItem, error)
}

// EventSink receives domain events emitted by completing flows. Emission is
// fire-and-forget from the flow's point of view.
type EventSink interface {
	Emit(ctx context.Context, eventType string, payload map[string]interface{})
}

// Collaborators bundles every contract a flow may need.
type Collaborators struct {
	Auth         Authenticator
	Restaurants  RestaurantDirectory
	Menus        MenuProvider
	Orders       OrderPlacer
	Payments     PaymentRecorder
	Reservations ReservationBook
	Recommender  Recommender
	Events       EventSink
}
