package store

// CartLine is one item the user has added to their cart. UnitPrice is the
// menu's authoritative price at the time the line was added, never a
// user-supplied value.
type CartLine struct {
	ItemID         uint    `json:"item_id"`
	ItemName       string  `json:"item_name"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	RestaurantName string  `json:"restaurant_name"`
}

// RestaurantSummary is a search result kept in context for follow-up turns.
type RestaurantSummary struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Cuisine    string  `json:"cuisine"`
	City       string  `json:"city"`
	Area       string  `json:"area"`
	PriceRange string  `json:"price_range"`
	Rating     float64 `json:"rating"`
}

// ReservationSummary is the candidate set fetched when a reservation flow
// needs to disambiguate. The user's chosen ID is validated against this set
// instead of re-querying.
type ReservationSummary struct {
	ID             uint   `json:"id"`
	RestaurantName string `json:"restaurant_name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	PartySize      int    `json:"party_size"`
}

// OrderSummary is the candidate set for order status/cancellation flows.
type OrderSummary struct {
	ID            uint    `json:"id"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentStatus string  `json:"payment_status"`
}

// ContextData holds the slots accumulated across the turns of the active
// intent. Zero values mean "not collected yet"; flows re-prompt for whatever
// is still missing. Reset clears everything when a flow completes.
type ContextData struct {
	RestaurantName string  `json:"restaurant_name,omitempty"`
	Cuisine        string  `json:"cuisine,omitempty"`
	Location       string  `json:"location,omitempty"`
	PriceRange     string  `json:"price_range,omitempty"`
	MinRating      float64 `json:"min_rating,omitempty"`

	Date      string `json:"date,omitempty"` // YYYY-MM-DD, validated not in the past
	Time      string `json:"time,omitempty"` // HH:MM 24h
	PartySize int    `json:"party_size,omitempty"`
	Notes     string `json:"notes,omitempty"`

	ItemName  string  `json:"item_name,omitempty"`
	ItemID    uint    `json:"item_id,omitempty"`
	ItemPrice float64 `json:"item_price,omitempty"`
	Quantity  int     `json:"quantity,omitempty"`
	EditIndex int     `json:"edit_index,omitempty"` // 1-based cart index being edited

	OrderID        uint   `json:"order_id,omitempty"`
	ReservationID  uint   `json:"reservation_id,omitempty"`
	DeliveryMethod string `json:"delivery_method,omitempty"`
	Category       string `json:"category,omitempty"`

	AuthEmail string `json:"auth_email,omitempty"`
	AuthName  string `json:"auth_name,omitempty"`

	// Transient working sets for disambiguation steps.
	LastSearchResults []RestaurantSummary  `json:"last_search_results,omitempty"`
	Reservations      []ReservationSummary `json:"reservations,omitempty"`
	PendingOrders     []OrderSummary       `json:"pending_orders,omitempty"`
}

// Reset clears all accumulated slots.
func (c *ContextData) Reset() {
	*c = ContextData{}
}

// ConversationProfile is the per-conversation session record: auth state,
// the task currently holding the conversation, its step, accumulated slots,
// and the cart. One profile per conversation identifier, mutated every turn.
type ConversationProfile struct {
	ConversationID  string      `json:"conversation_id"`
	IsAuthenticated bool        `json:"is_authenticated"`
	UserID          uint        `json:"user_id,omitempty"`
	Email           string      `json:"email,omitempty"`
	Name            string      `json:"name,omitempty"`
	AuthToken       string      `json:"auth_token,omitempty"`
	ActiveIntent    string      `json:"active_intent,omitempty"`
	Step            string      `json:"step,omitempty"`
	Context         ContextData `json:"context_data"`
	Cart            []CartLine  `json:"cart"`
}

const (
	IntentAuthentication = "Authentication"
	StepChoosingAuthMode = "choosing_auth_mode"
)

// NewProfile returns the default profile for a first turn: unauthenticated,
// parked in the authentication flow.
func NewProfile(conversationID string) *ConversationProfile {
	return &ConversationProfile{
		ConversationID: conversationID,
		ActiveIntent:   IntentAuthentication,
		Step:           StepChoosingAuthMode,
		Cart:           []CartLine{},
	}
}

// CartTotal recomputes the invariant total over the current lines.
func (p *ConversationProfile) CartTotal() float64 {
	var total float64
	for _, line := range p.Cart {
		total += float64(line.Quantity) * line.UnitPrice
	}
	return total
}

// ClearFlow drops the active intent, its step and all collected slots. The
// cart survives; flows that consume it clear it explicitly.
func (p *ConversationProfile) ClearFlow() {
	p.ActiveIntent = ""
	p.Step = ""
	p.Context.Reset()
}
