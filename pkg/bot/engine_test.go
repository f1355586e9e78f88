package bot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"restobot-be/pkg/nlu"
	"restobot-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes -----------------------------------------------------------------

type fakeClassifier struct {
	results []*nlu.Result
	err     error
	queries []string
}

func (f *fakeClassifier) Classify(_ context.Context, text string) (*nlu.Result, error) {
	f.queries = append(f.queries, text)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.results) == 0 {
		return &nlu.Result{TopIntent: nlu.IntentNone}, nil
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeAuth struct {
	users map[string]string // email -> password
}

func (f *fakeAuth) Authenticate(_ context.Context, email, password string) (*AuthResult, error) {
	if pw, ok := f.users[email]; ok && pw == password {
		return &AuthResult{UserID: 1, Email: email, Name: "Tester", Token: "tok"}, nil
	}
	return nil, nil
}

func (f *fakeAuth) Register(_ context.Context, name, email, password string) (*AuthResult, error) {
	if _, taken := f.users[email]; taken {
		return nil, nil
	}
	f.users[email] = password
	return &AuthResult{UserID: 2, Email: email, Name: name, Token: "tok"}, nil
}

type fakeDirectory struct {
	restaurants []store.RestaurantSummary
}

func (f *fakeDirectory) FindRestaurant(_ context.Context, name string) (*store.RestaurantSummary, error) {
	for _, r := range f.restaurants {
		if r.Name == name {
			out := r
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeDirectory) SearchRestaurants(_ context.Context, filters SearchFilters) ([]store.RestaurantSummary, error) {
	var out []store.RestaurantSummary
	for _, r := range f.restaurants {
		if filters.Cuisine != "" && r.Cuisine != filters.Cuisine {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeDirectory) ListRestaurants(_ context.Context) ([]store.RestaurantSummary, error) {
	return f.restaurants, nil
}

type fakeMenus struct {
	items []MenuItem
}

func (f *fakeMenus) FindMenu(_ context.Context, restaurantName string) ([]MenuItem, error) {
	var out []MenuItem
	for _, i := range f.items {
		if i.Restaurant == restaurantName {
			out = append(out, i)
		}
	}
	if out == nil {
		return nil, nil
	}
	return out, nil
}

func (f *fakeMenus) FindMenuItem(_ context.Context, itemName, restaurantName string) (*MenuItem, error) {
	for _, i := range f.items {
		if i.Restaurant == restaurantName && i.Name == itemName {
			out := i
			return &out, nil
		}
	}
	return nil, nil
}

type fakeOrders struct {
	nextID    uint
	orders    map[uint]*store.OrderSummary
	cancelled []uint
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{nextID: 1, orders: map[uint]*store.OrderSummary{}}
}

func (f *fakeOrders) CreateOrder(_ context.Context, _ uint, lines []store.CartLine, _ string) (*store.OrderSummary, error) {
	var total float64
	for _, l := range lines {
		total += float64(l.Quantity) * l.UnitPrice
	}
	o := &store.OrderSummary{ID: f.nextID, Status: store.OrderStatusPlaced, TotalAmount: total}
	f.orders[f.nextID] = o
	f.nextID++
	return o, nil
}

func (f *fakeOrders) ListUserOrders(_ context.Context, _ uint) ([]store.OrderSummary, error) {
	var out []store.OrderSummary
	for id := uint(1); id < f.nextID; id++ {
		if o, ok := f.orders[id]; ok {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrders) GetOrder(_ context.Context, _ uint, orderID uint) (*store.OrderSummary, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, nil
	}
	out := *o
	return &out, nil
}

func (f *fakeOrders) CancelOrder(_ context.Context, _ uint, orderID uint) (bool, error) {
	o, ok := f.orders[orderID]
	if !ok || o.Status != store.OrderStatusPlaced {
		return false, nil
	}
	o.Status = store.OrderStatusCancelled
	f.cancelled = append(f.cancelled, orderID)
	return true, nil
}

type fakePayments struct {
	status   map[uint]string
	mode     map[uint]string
	refunded []uint
}

func newFakePayments() *fakePayments {
	return &fakePayments{status: map[uint]string{}, mode: map[uint]string{}}
}

func (f *fakePayments) RecordPayment(_ context.Context, orderID uint, _ float64, mode, status string) error {
	f.status[orderID] = status
	f.mode[orderID] = mode
	return nil
}

func (f *fakePayments) Status(_ context.Context, _ uint, orderID uint) (string, error) {
	return f.status[orderID], nil
}

func (f *fakePayments) Refund(_ context.Context, orderID uint) (bool, error) {
	if f.status[orderID] == store.PaymentStatusPaid {
		f.status[orderID] = store.PaymentStatusRefunded
		f.refunded = append(f.refunded, orderID)
		return true, nil
	}
	return false, nil
}

type fakeReservations struct {
	nextID   uint
	booked   []store.ReservationSummary
	failNext bool
}

func (f *fakeReservations) CreateReservation(_ context.Context, _ uint, restaurantName, date, timeOfDay string, partySize int, _ string) (*store.ReservationSummary, error) {
	if f.failNext {
		return nil, nil
	}
	f.nextID++
	r := store.ReservationSummary{ID: f.nextID, RestaurantName: restaurantName, Date: date, Time: timeOfDay, PartySize: partySize}
	f.booked = append(f.booked, r)
	return &r, nil
}

func (f *fakeReservations) ListReservations(_ context.Context, _ uint) ([]store.ReservationSummary, error) {
	return f.booked, nil
}

func (f *fakeReservations) CancelReservation(_ context.Context, _ uint, reservationID uint) (bool, error) {
	for i, r := range f.booked {
		if r.ID == reservationID {
			f.booked = append(f.booked[:i], f.booked[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReservations) ModifyReservation(_ context.Context, _ uint, reservationID uint, date, timeOfDay string, partySize int) (bool, error) {
	for i, r := range f.booked {
		if r.ID == reservationID {
			f.booked[i].Date = date
			f.booked[i].Time = timeOfDay
			f.booked[i].PartySize = partySize
			return true, nil
		}
	}
	return false, nil
}

type fakeRecommender struct {
	items []MenuItem
}

func (f *fakeRecommender) Recommend(_ context.Context, category string) ([]MenuItem, error) {
	if category == "" {
		return f.items, nil
	}
	var out []MenuItem
	for _, i := range f.items {
		if i.DietType == category {
			out = append(out, i)
		}
	}
	return out, nil
}

type recordedEvent struct {
	Type    string
	Payload map[string]interface{}
}

type fakeEvents struct {
	events []recordedEvent
}

func (f *fakeEvents) Emit(_ context.Context, eventType string, payload map[string]interface{}) {
	f.events = append(f.events, recordedEvent{Type: eventType, Payload: payload})
}

// --- harness ---------------------------------------------------------------

type harness struct {
	engine       *Engine
	classifier   *fakeClassifier
	orders       *fakeOrders
	payments     *fakePayments
	reservations *fakeReservations
	events       *fakeEvents
	profile      *store.ConversationProfile
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	classifier := &fakeClassifier{}
	orders := newFakeOrders()
	payments := newFakePayments()
	reservations := &fakeReservations{}
	events := &fakeEvents{}

	deps := Collaborators{
		Auth: &fakeAuth{users: map[string]string{"user@example.com": "secret"}},
		Restaurants: &fakeDirectory{restaurants: []store.RestaurantSummary{
			{ID: 1, Name: "Pizza Palace", Cuisine: "Italian", City: "Mumbai", Area: "Bandra", PriceRange: "mid", Rating: 4.5},
			{ID: 2, Name: "Spice Garden", Cuisine: "Indian", City: "Mumbai", Area: "Andheri", PriceRange: "budget", Rating: 4.2},
		}},
		Menus: &fakeMenus{items: []MenuItem{
			{ID: 10, Name: "Margherita Pizza", DietType: "vegetarian", Price: 349, Restaurant: "Pizza Palace"},
			{ID: 11, Name: "Garlic Bread", DietType: "vegetarian", Price: 149, Restaurant: "Pizza Palace"},
		}},
		Orders:       orders,
		Payments:     payments,
		Reservations: reservations,
		Recommender:  &fakeRecommender{},
		Events:       events,
	}

	return &harness{
		engine:       NewEngine(classifier, deps, nopLogger{}),
		classifier:   classifier,
		orders:       orders,
		payments:     payments,
		reservations: reservations,
		events:       events,
		profile:      store.NewProfile("conv-1"),
	}
}

func (h *harness) turn(t *testing.T, text string) []Reply {
	t.Helper()
	replies := h.engine.HandleTurn(context.Background(), h.profile, text)
	require.NotEmpty(t, replies)
	return replies
}

// login walks the auth flow so tests can start authenticated.
func (h *harness) login(t *testing.T) {
	t.Helper()
	h.turn(t, "login")
	h.turn(t, "user@example.com")
	h.turn(t, "secret")
	require.True(t, h.profile.IsAuthenticated)
}

// intent queues one classification result for the next turn.
func (h *harness) intent(topIntent string, entities ...nlu.Entity) {
	h.classifier.results = append(h.classifier.results, &nlu.Result{TopIntent: topIntent, Entities: entities})
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

// --- tests -----------------------------------------------------------------

func TestUnauthenticatedTurnsNeverReachClassifier(t *testing.T) {
	h := newHarness(t)

	replies := h.turn(t, "show me italian restaurants")
	assert.Contains(t, replies[0].Text, "login")
	assert.Empty(t, h.classifier.queries)
	assert.Equal(t, store.IntentAuthentication, h.profile.ActiveIntent)
}

func TestLoginFlow(t *testing.T) {
	h := newHarness(t)

	h.turn(t, "login")
	assert.Equal(t, "login_email", h.profile.Step)

	replies := h.turn(t, "not-an-email")
	assert.Contains(t, replies[0].Text, "doesn't look like an email")
	assert.Equal(t, "login_email", h.profile.Step)

	h.turn(t, "user@example.com")
	replies = h.turn(t, "wrong-password")
	assert.Contains(t, replies[0].Text, "Invalid email or password")
	assert.False(t, h.profile.IsAuthenticated)

	h.turn(t, "login")
	h.turn(t, "user@example.com")
	replies = h.turn(t, "secret")
	assert.Contains(t, replies[0].Text, "Welcome")
	assert.True(t, h.profile.IsAuthenticated)
	assert.Empty(t, h.profile.ActiveIntent)

	require.NotEmpty(t, h.events.events)
	assert.Equal(t, "USER_LOGIN", h.events.events[0].Type)
}

func TestSignupFlow(t *testing.T) {
	h := newHarness(t)

	h.turn(t, "signup")
	h.turn(t, "New User")
	h.turn(t, "new@example.com")
	replies := h.turn(t, "hunter2")
	assert.Contains(t, replies[0].Text, "registered")
	assert.True(t, h.profile.IsAuthenticated)
	assert.Equal(t, uint(2), h.profile.UserID)
}

func TestResetKeywordClearsFlowState(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentMakeReservation)
	h.turn(t, "book a table")
	require.Equal(t, IntentMakeReservation, h.profile.ActiveIntent)

	replies := h.turn(t, "cancel")
	assert.Contains(t, replies[0].Text, "reset the conversation")
	assert.Empty(t, h.profile.ActiveIntent)
	assert.Empty(t, h.profile.Step)
	// Reset keywords never hit the classifier.
	assert.Len(t, h.classifier.queries, 1)
}

func TestResetWhileUnauthenticatedReparksInAuthFlow(t *testing.T) {
	h := newHarness(t)

	h.turn(t, "login")
	replies := h.turn(t, "exit")
	require.Len(t, replies, 2)
	assert.Contains(t, replies[0].Text, "reset the conversation")
	assert.Contains(t, replies[1].Text, "login")
	assert.Equal(t, store.StepChoosingAuthMode, h.profile.Step)
}

func TestNoneAndGreetingWhenIdle(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(nlu.IntentNone)
	replies := h.turn(t, "blah blah")
	assert.Contains(t, replies[0].Text, "didn't understand")

	h.intent(IntentGeneralGreeting)
	replies = h.turn(t, "hi there")
	assert.Contains(t, replies[0].Text, "Hello")
	assert.Empty(t, h.profile.ActiveIntent)
}

func TestClassifierErrorTreatedAsNone(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.classifier.err = errors.New("service unavailable")

	replies := h.turn(t, "anything")
	assert.Contains(t, replies[0].Text, "didn't understand")
	assert.Empty(t, h.profile.ActiveIntent)
}

func TestIntentLockWarnsWithoutStateChange(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentMakeReservation)
	h.turn(t, "book a table")
	stepBefore := h.profile.Step

	h.intent(IntentSearchRestaurant)
	replies := h.turn(t, "actually find me a restaurant")
	assert.Contains(t, replies[0].Text, "currently working on")
	assert.Contains(t, replies[0].Text, IntentMakeReservation)
	assert.Equal(t, IntentMakeReservation, h.profile.ActiveIntent)
	assert.Equal(t, stepBefore, h.profile.Step)
}

func TestContinuationHintSentMidFlow(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentMakeReservation)
	h.turn(t, "book a table")
	h.turn(t, "Pizza Palace")

	last := h.classifier.queries[len(h.classifier.queries)-1]
	assert.Equal(t, fmt.Sprintf("might be %s but is %s", IntentMakeReservation, "Pizza Palace"), last)
}

func TestMakeReservationEndToEnd(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	date := futureDate()

	h.intent(IntentMakeReservation)
	replies := h.turn(t, "book a table")
	assert.Contains(t, replies[0].Text, "name of the restaurant")

	replies = h.turn(t, "Pizza Palace")
	assert.Contains(t, replies[0].Text, "Pizza Palace")
	assert.Contains(t, replies[0].Text, "date")

	// An invalid date re-prompts without advancing.
	replies = h.turn(t, "tomorrow-ish")
	assert.Contains(t, replies[0].Text, "valid date")

	h.turn(t, date)
	replies = h.turn(t, "19:30")
	assert.Contains(t, replies[0].Text, "party")

	replies = h.turn(t, "4")
	assert.Contains(t, replies[0].Text, "confirm table")

	replies = h.turn(t, "confirm table")
	assert.Contains(t, replies[0].Text, "has been booked")
	assert.Empty(t, h.profile.ActiveIntent)

	require.Len(t, h.reservations.booked, 1)
	booked := h.reservations.booked[0]
	assert.Equal(t, "Pizza Palace", booked.RestaurantName)
	assert.Equal(t, date, booked.Date)
	assert.Equal(t, "19:30", booked.Time)
	assert.Equal(t, 4, booked.PartySize)

	last := h.events.events[len(h.events.events)-1]
	assert.Equal(t, "RESERVATION_BOOKED", last.Type)
}

func TestMakeReservationConfirmRequiresBothWords(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentMakeReservation)
	h.turn(t, "book a table")
	h.turn(t, "Pizza Palace")
	h.turn(t, futureDate())
	h.turn(t, "19:30")
	h.turn(t, "2")

	replies := h.turn(t, "confirm")
	assert.Contains(t, replies[0].Text, "Booking cancelled")
	assert.Empty(t, h.reservations.booked)
	assert.Empty(t, h.profile.ActiveIntent)
}

func TestAddToCartShortCircuit(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentAddToCart,
		nlu.Entity{Category: nlu.CategoryRestaurantName, Text: "Pizza Palace"},
		nlu.Entity{Category: nlu.CategoryMenuItem, Text: "Margherita Pizza"},
		nlu.Entity{Category: nlu.CategoryQuantity, Text: "2"},
	)
	replies := h.turn(t, "add 2 margherita pizzas from pizza palace")
	assert.Contains(t, replies[0].Text, "Added **2 x Margherita Pizza**")
	assert.Empty(t, h.profile.ActiveIntent)

	require.Len(t, h.profile.Cart, 1)
	line := h.profile.Cart[0]
	assert.Equal(t, uint(10), line.ItemID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 349.0, line.UnitPrice)
	assert.Equal(t, 698.0, h.profile.CartTotal())
}

func TestAddToCartPromptsForMissingSlots(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentAddToCart)
	replies := h.turn(t, "add something to my cart")
	assert.Contains(t, replies[0].Text, "Which restaurant")

	replies = h.turn(t, "Pizza Palace")
	assert.Contains(t, replies[0].Text, "what item")

	replies = h.turn(t, "Nonexistent Dish")
	assert.Contains(t, replies[0].Text, "Couldn't find")

	replies = h.turn(t, "Garlic Bread")
	assert.Contains(t, replies[0].Text, "How many")

	h.turn(t, "3")
	require.Len(t, h.profile.Cart, 1)
	assert.Equal(t, "Garlic Bread", h.profile.Cart[0].ItemName)
	assert.Equal(t, 3, h.profile.Cart[0].Quantity)
}

func TestRemoveFromCartValidatesIndex(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.profile.Cart = []store.CartLine{
		{ItemID: 10, ItemName: "Margherita Pizza", Quantity: 1, UnitPrice: 349, RestaurantName: "Pizza Palace"},
	}

	h.intent(IntentRemoveFromCart)
	h.turn(t, "remove an item")

	replies := h.turn(t, "5")
	assert.Contains(t, replies[0].Text, "Invalid number")
	assert.Len(t, h.profile.Cart, 1)

	replies = h.turn(t, "1")
	assert.Contains(t, replies[0].Text, "Removed **Margherita Pizza**")
	assert.Empty(t, h.profile.Cart)
}

func TestEditCartZeroQuantityRemovesLine(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.profile.Cart = []store.CartLine{
		{ItemID: 10, ItemName: "Margherita Pizza", Quantity: 2, UnitPrice: 349, RestaurantName: "Pizza Palace"},
		{ItemID: 11, ItemName: "Garlic Bread", Quantity: 1, UnitPrice: 149, RestaurantName: "Pizza Palace"},
	}

	h.intent(IntentEditCart)
	h.turn(t, "edit my cart")
	h.turn(t, "1")
	replies := h.turn(t, "0")
	assert.Contains(t, replies[0].Text, "Removed **Margherita Pizza**")
	require.Len(t, h.profile.Cart, 1)
	assert.Equal(t, "Garlic Bread", h.profile.Cart[0].ItemName)
}

func TestClearCart(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.profile.Cart = []store.CartLine{
		{ItemID: 10, ItemName: "Margherita Pizza", Quantity: 2, UnitPrice: 349},
	}

	h.intent(IntentClearCart)
	replies := h.turn(t, "clear my cart")
	assert.Contains(t, replies[0].Text, "cleared")
	assert.Empty(t, h.profile.Cart)
	assert.Empty(t, h.profile.ActiveIntent)
}

func TestPayOrderPayNow(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.profile.Cart = []store.CartLine{
		{ItemID: 10, ItemName: "Margherita Pizza", Quantity: 2, UnitPrice: 349, RestaurantName: "Pizza Palace"},
	}

	h.intent(IntentPayOrder)
	replies := h.turn(t, "checkout")
	assert.Contains(t, replies[0].Text, "Margherita Pizza")
	assert.Contains(t, replies[0].Text, "pickup")

	replies = h.turn(t, "pickup please")
	assert.Contains(t, replies[0].Text, "confirm order")
	assert.Empty(t, h.orders.orders)

	replies = h.turn(t, "confirm order")
	assert.Contains(t, replies[0].Text, "Order #1 placed")
	assert.Empty(t, h.profile.Cart)

	replies = h.turn(t, "pay now")
	assert.Contains(t, replies[0].Text, "Payment of ₹698.00 for order #1 completed")
	assert.Equal(t, store.PaymentStatusPaid, h.payments.status[1])
	assert.Equal(t, store.PaymentModeOnline, h.payments.mode[1])
	assert.Empty(t, h.profile.ActiveIntent)
}

func TestPayOrderCashStaysPending(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.profile.Cart = []store.CartLine{
		{ItemID: 11, ItemName: "Garlic Bread", Quantity: 1, UnitPrice: 149, RestaurantName: "Pizza Palace"},
	}

	h.intent(IntentPayOrder)
	h.turn(t, "checkout")
	h.turn(t, "delivery")
	h.turn(t, "confirm order")
	replies := h.turn(t, "cash")
	assert.Contains(t, replies[0].Text, "cash")
	assert.Equal(t, store.PaymentStatusPending, h.payments.status[1])
	assert.Equal(t, store.PaymentModeCashOnDelivery, h.payments.mode[1])
}

func TestPayOrderNeedsConfirmationBeforePlacing(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.profile.Cart = []store.CartLine{
		{ItemID: 10, ItemName: "Margherita Pizza", Quantity: 1, UnitPrice: 349, RestaurantName: "Pizza Palace"},
	}

	h.intent(IntentPayOrder)
	h.turn(t, "checkout")
	h.turn(t, "delivery")
	assert.Empty(t, h.orders.orders)

	replies := h.turn(t, "actually no")
	assert.Contains(t, replies[0].Text, "haven't placed")
	assert.Empty(t, h.orders.orders)
	assert.Len(t, h.profile.Cart, 1)
	assert.Empty(t, h.profile.ActiveIntent)
}

func TestPayOrderUnrecognizedReplyStaysPending(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.profile.Cart = []store.CartLine{
		{ItemID: 11, ItemName: "Garlic Bread", Quantity: 1, UnitPrice: 149, RestaurantName: "Pizza Palace"},
	}

	h.intent(IntentPayOrder)
	h.turn(t, "checkout")
	h.turn(t, "pickup")
	h.turn(t, "confirm order")

	replies := h.turn(t, "hmm, not sure")
	assert.Contains(t, replies[0].Text, "awaiting payment")
	assert.Equal(t, store.PaymentStatusPending, h.payments.status[1])
	assert.Equal(t, store.PaymentModeOnline, h.payments.mode[1])
	assert.Empty(t, h.profile.ActiveIntent)
}

func TestPayOrderEmptyCart(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentPayOrder)
	replies := h.turn(t, "checkout")
	assert.Contains(t, replies[0].Text, "cart is empty")
	assert.Empty(t, h.profile.ActiveIntent)
}

func TestConfirmOrderRoutesToPaymentFlow(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.profile.Cart = []store.CartLine{
		{ItemID: 11, ItemName: "Garlic Bread", Quantity: 1, UnitPrice: 149, RestaurantName: "Pizza Palace"},
	}

	h.intent(IntentConfirmOrder)
	h.turn(t, "place my order")
	assert.Equal(t, IntentPayOrder, h.profile.ActiveIntent)
}

func TestCheckPaymentStatusPendingOffersRetry(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	order, err := h.orders.CreateOrder(context.Background(), 1, []store.CartLine{
		{ItemID: 10, ItemName: "Margherita Pizza", Quantity: 1, UnitPrice: 349},
	}, "pickup")
	require.NoError(t, err)
	h.payments.status[order.ID] = store.PaymentStatusPending

	h.intent(IntentCheckPaymentStatus)
	replies := h.turn(t, "check my payment status")
	assert.Contains(t, replies[0].Text, "Order ID")

	replies = h.turn(t, fmt.Sprintf("%d", order.ID))
	assert.Contains(t, replies[0].Text, "pending")

	replies = h.turn(t, "pay")
	assert.Contains(t, replies[0].Text, "completed")
	assert.Equal(t, store.PaymentStatusPaid, h.payments.status[order.ID])
}

func TestCancelOrderAllWithRefund(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	ctx := context.Background()

	first, err := h.orders.CreateOrder(ctx, 1, []store.CartLine{{ItemID: 10, Quantity: 1, UnitPrice: 349}}, "pickup")
	require.NoError(t, err)
	second, err := h.orders.CreateOrder(ctx, 1, []store.CartLine{{ItemID: 11, Quantity: 1, UnitPrice: 149}}, "pickup")
	require.NoError(t, err)
	h.payments.status[first.ID] = store.PaymentStatusPaid

	h.profile.Cart = []store.CartLine{{ItemID: 11, ItemName: "Garlic Bread", Quantity: 1, UnitPrice: 149}}

	h.intent(IntentCancelOrder)
	replies := h.turn(t, "cancel my orders")
	assert.Contains(t, replies[0].Text, "multiple active orders")

	replies = h.turn(t, "all")
	assert.Contains(t, replies[0].Text, "Cancelled order(s): #1, #2")
	assert.Contains(t, replies[0].Text, "Refund initiated for order(s): #1")
	assert.ElementsMatch(t, []uint{first.ID, second.ID}, h.orders.cancelled)
	assert.Equal(t, []uint{first.ID}, h.payments.refunded)
	assert.Empty(t, h.profile.Cart)
}

func TestCancelSingleOrderAsksYesNo(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	_, err := h.orders.CreateOrder(context.Background(), 1, []store.CartLine{{ItemID: 10, Quantity: 1, UnitPrice: 349}}, "pickup")
	require.NoError(t, err)

	h.intent(IntentCancelOrder)
	replies := h.turn(t, "cancel my order")
	assert.Contains(t, replies[0].Text, "yes")

	replies = h.turn(t, "no")
	assert.Contains(t, replies[0].Text, "your order is safe")
	assert.Empty(t, h.orders.cancelled)
}

func TestUnknownStepRestartsFlow(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.profile.ActiveIntent = IntentCheckPaymentStatus
	h.profile.Step = "no_such_step"
	h.intent(nlu.IntentNone)

	replies := h.turn(t, "hello?")
	assert.Contains(t, replies[0].Text, "Order ID")
	assert.Equal(t, "awaiting_order_id", h.profile.Step)
}
