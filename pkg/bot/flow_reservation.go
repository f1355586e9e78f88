package bot

import (
	"context"
	"fmt"
	"strings"

	"restobot-be/pkg/events"
	"restobot-be/pkg/store"
)

const (
	stepInitial              = "initial"
	stepAwaitingDate         = "awaiting_date"
	stepAwaitingTime         = "awaiting_time"
	stepAwaitingPartySize    = "awaiting_party_size"
	stepConfirmingBooking    = "confirming_booking"
	stepAwaitingReservation  = "awaiting_reservation_id"
	stepAwaitingNewDate      = "awaiting_new_date"
	stepAwaitingNewTime      = "awaiting_new_time"
	stepAwaitingNewPartySize = "awaiting_new_party_size"
	stepConfirmingModify     = "confirming_modification"
)

const msgReservationNextSteps = "\n\n👉 What would you like to do next?\n\n• 🗓️ Book a table\n\n• 🍔 Place an order\n\n• 📋 View my reservations\n\n• ❓ Ask for help"

func (e *Engine) makeReservationFlow() *Flow {
	return &Flow{
		Name:    IntentMakeReservation,
		Initial: stepAwaitingRestaurant,
		Steps: map[string]StepHandler{
			stepAwaitingRestaurant: e.reserveRestaurant,
			stepAwaitingDate:       e.reserveDate,
			stepAwaitingTime:       e.reserveTime,
			stepAwaitingPartySize:  e.reservePartySize,
			stepConfirmingBooking:  e.reserveConfirm,
		},
	}
}

// Slot steps accept either a classifier entity already merged into context or
// the raw reply itself, so the flow works the same with and without
// extraction.

func (e *Engine) reserveRestaurant(_ context.Context, t *Turn) StepResult {
	c := &t.Profile.Context
	if c.RestaurantName == "" && t.Profile.Step != "" {
		c.RestaurantName = strings.TrimSpace(t.Text)
	}
	if c.RestaurantName == "" {
		return stay(Text("❓ Please provide the name of the restaurant you'd like to book."))
	}
	return goTo(stepAwaitingDate,
		Text("📍 You've selected **%s**.\n\n📅 Please provide the reservation date (YYYY-MM-DD):", c.RestaurantName))
}

func (e *Engine) reserveDate(_ context.Context, t *Turn) StepResult {
	c := &t.Profile.Context
	if c.Date == "" && ValidDate(strings.TrimSpace(t.Text)) {
		c.Date = strings.TrimSpace(t.Text)
	}
	if c.Date == "" {
		return stay(Text("❓ Please provide a valid date in the format YYYY-MM-DD."))
	}
	return goTo(stepAwaitingTime, Text("⏰ Thanks! Now, what time would you like to book (e.g., 18:30)?"))
}

func (e *Engine) reserveTime(_ context.Context, t *Turn) StepResult {
	c := &t.Profile.Context
	if c.Time == "" && ValidTime(strings.TrimSpace(t.Text)) {
		c.Time = strings.TrimSpace(t.Text)
	}
	if c.Time == "" {
		return stay(Text("❓ Please provide a valid time in HH:MM (24h) format."))
	}
	return goTo(stepAwaitingPartySize, Text("👥 Thanks! Now, how many people will be in your party?"))
}

func (e *Engine) reservePartySize(_ context.Context, t *Turn) StepResult {
	c := &t.Profile.Context
	if c.PartySize <= 0 {
		if n, ok := FirstInt(t.Text); ok && n > 0 {
			c.PartySize = n
		}
	}
	if c.PartySize <= 0 {
		return stay(Text("❓ Please provide a valid number for the party size."))
	}
	return goTo(stepConfirmingBooking,
		Text("✅ %s has availability on %s at %s for %d people.\n\n👉 Type \"confirm table\" to book or \"cancel table\" to abort.",
			c.RestaurantName, c.Date, c.Time, c.PartySize))
}

func (e *Engine) reserveConfirm(ctx context.Context, t *Turn) StepResult {
	c := &t.Profile.Context
	lower := t.Lower()
	if !strings.Contains(lower, "confirm") || !strings.Contains(lower, "table") {
		return done(Text("❌ Booking cancelled.\n\n👉 What would you like to do next?\n\n• 🗓️ Book another table\n\n• 📋 View my reservations\n\n• ❓ Ask for help"))
	}
	res, err := e.deps.Reservations.CreateReservation(ctx, t.Profile.UserID, c.RestaurantName, c.Date, c.Time, c.PartySize, c.Notes)
	if err != nil {
		return e.fail(t, IntentMakeReservation, err)
	}
	if res == nil {
		return done(Text("❌ Could not complete the booking. It might no longer be available. Try a different time or restaurant."))
	}
	e.emit(ctx, events.TypeReservationBooked, map[string]interface{}{
		"reservation_id": res.ID,
		"user_id":        t.Profile.UserID,
		"restaurant":     res.RestaurantName,
		"date":           res.Date,
		"time":           res.Time,
		"party_size":     res.PartySize,
	})
	return done(Text("✅ Your table at **%s** for %d has been booked on %s at %s!%s",
		c.RestaurantName, c.PartySize, c.Date, c.Time, msgReservationNextSteps))
}

func (e *Engine) cancelReservationFlow() *Flow {
	return &Flow{
		Name:    IntentCancelReservation,
		Initial: stepInitial,
		Steps: map[string]StepHandler{
			stepInitial:             e.cancelReservationStart,
			stepAwaitingReservation: e.cancelReservationByID,
		},
	}
}

func (e *Engine) cancelReservationStart(ctx context.Context, t *Turn) StepResult {
	p := t.Profile
	reservations, err := e.deps.Reservations.ListReservations(ctx, p.UserID)
	if err != nil {
		return e.fail(t, IntentCancelReservation, err)
	}
	if len(reservations) == 0 {
		return done(Text("ℹ️ You have no active reservations to cancel."))
	}
	if len(reservations) == 1 {
		return e.doCancelReservation(ctx, t, reservations[0].ID)
	}
	p.Context.Reservations = reservations
	return goTo(stepAwaitingReservation,
		Text("📋 You have multiple active reservations:\n%s\n\n👉 Please provide the Reservation ID you want to cancel.",
			reservationLines(reservations)))
}

func (e *Engine) cancelReservationByID(ctx context.Context, t *Turn) StepResult {
	id, ok := FirstInt(t.Text)
	if !ok || id <= 0 {
		return stay(Text("❓ Please enter a valid Reservation ID to cancel."))
	}
	if !knownReservation(t.Profile.Context.Reservations, uint(id)) {
		return stay(Text("❌ Reservation ID %d not found in your upcoming reservations. Please try again.", id))
	}
	return e.doCancelReservation(ctx, t, uint(id))
}

func (e *Engine) doCancelReservation(ctx context.Context, t *Turn, id uint) StepResult {
	cancelled, err := e.deps.Reservations.CancelReservation(ctx, t.Profile.UserID, id)
	if err != nil {
		return e.fail(t, IntentCancelReservation, err)
	}
	if !cancelled {
		return done(Text("⚠️ Could not cancel reservation %d. It might already be cancelled or not exist.%s", id, msgReservationNextSteps))
	}
	e.emit(ctx, events.TypeReservationCancelled, map[string]interface{}{
		"reservation_id": id,
		"user_id":        t.Profile.UserID,
	})
	return done(Text("❌ Your reservation (ID: %d) has been cancelled.%s", id, msgReservationNextSteps))
}

func (e *Engine) modifyReservationFlow() *Flow {
	return &Flow{
		Name:    IntentModifyReservation,
		Initial: stepInitial,
		Steps: map[string]StepHandler{
			stepInitial:              e.modifyReservationStart,
			stepAwaitingReservation:  e.modifyReservationByID,
			stepAwaitingNewDate:      e.modifyReservationDate,
			stepAwaitingNewTime:      e.modifyReservationTime,
			stepAwaitingNewPartySize: e.modifyReservationPartySize,
			stepConfirmingModify:     e.modifyReservationConfirm,
		},
	}
}

func (e *Engine) modifyReservationStart(ctx context.Context, t *Turn) StepResult {
	p := t.Profile
	reservations, err := e.deps.Reservations.ListReservations(ctx, p.UserID)
	if err != nil {
		return e.fail(t, IntentModifyReservation, err)
	}
	if len(reservations) == 0 {
		return done(Text("ℹ️ You have no active reservations to modify."))
	}
	p.Context.Reservations = reservations
	return goTo(stepAwaitingReservation,
		Text("📋 You have the following reservations:%s\n\n👉 Please provide the Reservation ID you want to modify.",
			reservationLines(reservations)))
}

func (e *Engine) modifyReservationByID(_ context.Context, t *Turn) StepResult {
	c := &t.Profile.Context
	id, ok := FirstInt(t.Text)
	if !ok || id <= 0 {
		return stay(Text("❓ Please enter a valid Reservation ID to modify."))
	}
	if !knownReservation(c.Reservations, uint(id)) {
		return stay(Text("❌ Reservation ID %d not found in your upcoming reservations. Please try again.", id))
	}
	c.ReservationID = uint(id)
	return goTo(stepAwaitingNewDate,
		Text("✏️ You're modifying reservation %d.\n\n📅 Please enter the new reservation date (YYYY-MM-DD):", id))
}

func (e *Engine) modifyReservationDate(_ context.Context, t *Turn) StepResult {
	text := strings.TrimSpace(t.Text)
	if !ValidDate(text) {
		return stay(Text("❓ Please provide a valid date in the format YYYY-MM-DD."))
	}
	t.Profile.Context.Date = text
	return goTo(stepAwaitingNewTime, Text("⏰ Thanks! Now, what is the new time (e.g., 18:30)?"))
}

func (e *Engine) modifyReservationTime(_ context.Context, t *Turn) StepResult {
	text := strings.TrimSpace(t.Text)
	if !ValidTime(text) {
		return stay(Text("❓ Please provide a valid time in HH:MM (24h) format."))
	}
	t.Profile.Context.Time = text
	return goTo(stepAwaitingNewPartySize, Text("👥 Great! How many people will be in your party?"))
}

func (e *Engine) modifyReservationPartySize(_ context.Context, t *Turn) StepResult {
	c := &t.Profile.Context
	n, ok := FirstInt(t.Text)
	if !ok || n <= 0 {
		return stay(Text("❓ Please provide a valid number for the party size."))
	}
	c.PartySize = n
	return goTo(stepConfirmingModify,
		Text("✅ You're about to modify reservation %d:\n\n📅 Date: %s\n\n⏰ Time: %s\n\n👥 Party Size: %d\n\n👉 Reply \"confirm modification\" to confirm or \"cancel\" to abort.",
			c.ReservationID, c.Date, c.Time, n))
}

func (e *Engine) modifyReservationConfirm(ctx context.Context, t *Turn) StepResult {
	c := &t.Profile.Context
	if !strings.Contains(t.Lower(), "confirm") {
		return done(Text("❌ Reservation modification cancelled."))
	}
	modified, err := e.deps.Reservations.ModifyReservation(ctx, t.Profile.UserID, c.ReservationID, c.Date, c.Time, c.PartySize)
	if err != nil {
		return e.fail(t, IntentModifyReservation, err)
	}
	if !modified {
		return done(Text("❌ Could not modify reservation %d. It might no longer be valid.", c.ReservationID))
	}
	return done(Text("✅ Reservation %d has been successfully modified!", c.ReservationID))
}

func (e *Engine) showReservationsFlow() *Flow {
	return &Flow{
		Name:    IntentShowReservations,
		Initial: stepStart,
		Steps: map[string]StepHandler{
			stepStart: e.showReservations,
		},
	}
}

func (e *Engine) showReservations(ctx context.Context, t *Turn) StepResult {
	reservations, err := e.deps.Reservations.ListReservations(ctx, t.Profile.UserID)
	if err != nil {
		return e.fail(t, IntentShowReservations, err)
	}
	if len(reservations) == 0 {
		return done(Text("ℹ️ You don't have any upcoming reservations."))
	}
	var b strings.Builder
	b.WriteString("📅 Here are your upcoming reservations:\n")
	for _, r := range reservations {
		fmt.Fprintf(&b, "\n\n• ID %d: **%s** on %s at %s for %d people", r.ID, r.RestaurantName, r.Date, r.Time, r.PartySize)
	}
	b.WriteString("\n\n👉 What would you like to do?\n\n• ❌ Cancel a reservation\n\n• ✏️ Modify a reservation\n\n• 📋 View menu or book another table")
	return done(plain(b.String()))
}

func reservationLines(reservations []store.ReservationSummary) string {
	var b strings.Builder
	for _, r := range reservations {
		fmt.Fprintf(&b, "\n\n• ID %d: %s on %s at %s", r.ID, r.RestaurantName, r.Date, r.Time)
	}
	return b.String()
}

func knownReservation(reservations []store.ReservationSummary, id uint) bool {
	for _, r := range reservations {
		if r.ID == id {
			return true
		}
	}
	return false
}
