package bot

import (
	"context"
	"fmt"
	"strings"

	"restobot-be/pkg/events"
	"restobot-be/pkg/store"
)

const (
	stepChoosingOrderStatus = "choosing_order_for_status"
	stepConfirmSingleCancel = "confirm_single_order_cancellation"
	stepChoosingOrderCancel = "choosing_order_for_cancellation"
)

func (e *Engine) checkOrderStatusFlow() *Flow {
	return &Flow{
		Name:    IntentCheckOrderStatus,
		Initial: stepStart,
		Steps: map[string]StepHandler{
			stepStart:               e.checkOrderStatusStart,
			stepChoosingOrderStatus: e.checkOrderStatusByID,
		},
	}
}

func (e *Engine) checkOrderStatusStart(ctx context.Context, t *Turn) StepResult {
	p := t.Profile
	if id := p.Context.OrderID; id != 0 {
		return e.reportOrderStatus(ctx, t, id)
	}
	orders, err := e.deps.Orders.ListUserOrders(ctx, p.UserID)
	if err != nil {
		return e.fail(t, IntentCheckOrderStatus, err)
	}
	if len(orders) == 0 {
		return done(Text("ℹ️ You have no recent or active orders."))
	}
	if len(orders) == 1 {
		return done(Text("📦 Your only order (#%d) is currently %s.", orders[0].ID, orders[0].Status))
	}
	p.Context.PendingOrders = orders
	return goTo(stepChoosingOrderStatus,
		Text("📋 Here are your recent or active orders:\n\n%s\n\n👉 Please provide the Order ID you want to check the status for.",
			orderLines(orders, true)))
}

func (e *Engine) checkOrderStatusByID(ctx context.Context, t *Turn) StepResult {
	id, ok := FirstInt(t.Text)
	if !ok || id <= 0 {
		return stay(Text("❓ Please enter a valid Order ID."))
	}
	if !knownOrder(t.Profile.Context.PendingOrders, uint(id)) {
		return stay(Text("❓ No order found for Order ID %d. Please verify and try again.", id))
	}
	return e.reportOrderStatus(ctx, t, uint(id))
}

func (e *Engine) reportOrderStatus(ctx context.Context, t *Turn, id uint) StepResult {
	order, err := e.deps.Orders.GetOrder(ctx, t.Profile.UserID, id)
	if err != nil {
		return e.fail(t, IntentCheckOrderStatus, err)
	}
	if order == nil {
		return done(Text("❓ No order found for Order ID %d. Please verify and try again.", id))
	}
	return done(Text("📦 Order %d is currently %s.", id, order.Status))
}

func (e *Engine) cancelOrderFlow() *Flow {
	return &Flow{
		Name:    IntentCancelOrder,
		Initial: stepStart,
		Steps: map[string]StepHandler{
			stepStart:               e.cancelOrderStart,
			stepConfirmSingleCancel: e.cancelOrderConfirmSingle,
			stepChoosingOrderCancel: e.cancelOrderChoose,
		},
	}
}

func (e *Engine) cancelOrderStart(ctx context.Context, t *Turn) StepResult {
	p := t.Profile
	orders, err := e.deps.Orders.ListUserOrders(ctx, p.UserID)
	if err != nil {
		return e.fail(t, IntentCancelOrder, err)
	}
	active := orders[:0:0]
	for _, o := range orders {
		if o.Status == store.OrderStatusPlaced {
			active = append(active, o)
		}
	}
	if len(active) == 0 {
		return done(Text("🤔 You don't have any active or recent orders to cancel."))
	}
	p.Context.PendingOrders = active
	if len(active) == 1 {
		p.Context.OrderID = active[0].ID
		return goTo(stepConfirmSingleCancel,
			Text("📋 You have an active order:\n\n• Order #%d — Status: %s\n\nWould you like to cancel this order?\n\n✅ Type \"yes\" to cancel\n❌ Type \"no\" to keep it.",
				active[0].ID, active[0].Status))
	}
	return goTo(stepChoosingOrderCancel,
		Text("📋 You have multiple active orders. Here are your options:\n\n%s\n\n👉 Type the Order ID you want to cancel, or type \"all\" to cancel all active orders.",
			orderLines(active, false)))
}

func (e *Engine) cancelOrderConfirmSingle(ctx context.Context, t *Turn) StepResult {
	switch t.Lower() {
	case "yes":
		return e.doCancelOrders(ctx, t, []uint{t.Profile.Context.OrderID})
	case "no":
		return done(Text("👍 Okay, your order is safe."))
	}
	return stay(Text("❓ Please type \"yes\" to cancel the order or \"no\" to keep it."))
}

func (e *Engine) cancelOrderChoose(ctx context.Context, t *Turn) StepResult {
	pending := t.Profile.Context.PendingOrders
	if t.Lower() == "all" {
		ids := make([]uint, 0, len(pending))
		for _, o := range pending {
			ids = append(ids, o.ID)
		}
		return e.doCancelOrders(ctx, t, ids)
	}
	id, ok := FirstInt(t.Text)
	if !ok || id <= 0 || !knownOrder(pending, uint(id)) {
		return stay(Text("❌ Invalid choice. Type a listed Order ID or \"all\"."))
	}
	return e.doCancelOrders(ctx, t, []uint{uint(id)})
}

// doCancelOrders cancels each order, refunding anything already paid, and
// clears the cart so an abandoned checkout doesn't linger.
func (e *Engine) doCancelOrders(ctx context.Context, t *Turn, ids []uint) StepResult {
	p := t.Profile
	var cancelled, refunded []uint
	for _, id := range ids {
		ok, err := e.deps.Orders.CancelOrder(ctx, p.UserID, id)
		if err != nil {
			return e.fail(t, IntentCancelOrder, err)
		}
		if !ok {
			continue
		}
		cancelled = append(cancelled, id)
		refund, err := e.deps.Payments.Refund(ctx, id)
		if err != nil {
			return e.fail(t, IntentCancelOrder, err)
		}
		if refund {
			refunded = append(refunded, id)
		}
		e.emit(ctx, events.TypeOrderCancelled, map[string]interface{}{
			"order_id": id,
			"user_id":  p.UserID,
			"refunded": refund,
		})
	}
	if len(cancelled) == 0 {
		return done(Text("⚠️ Could not cancel the selected order(s). They might already be cancelled."))
	}
	msg := fmt.Sprintf("❌ Cancelled order(s): %s.", joinIDs(cancelled))
	if len(refunded) > 0 {
		msg += fmt.Sprintf("\n\n💸 Refund initiated for order(s): %s.", joinIDs(refunded))
	}
	msg += "\n\n🧹 Your cart has also been cleared." + msgReservationNextSteps
	return doneClearCart(plain(msg))
}

func orderLines(orders []store.OrderSummary, withTotal bool) string {
	var b strings.Builder
	for i, o := range orders {
		if i > 0 {
			b.WriteString("\n")
		}
		if withTotal {
			fmt.Fprintf(&b, "• Order #%d — Status: %s — Total: ₹%.2f", o.ID, o.Status, o.TotalAmount)
		} else {
			fmt.Fprintf(&b, "• Order #%d — Status: %s", o.ID, o.Status)
		}
	}
	return b.String()
}

func knownOrder(orders []store.OrderSummary, id uint) bool {
	for _, o := range orders {
		if o.ID == id {
			return true
		}
	}
	return false
}

func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("#%d", id)
	}
	return strings.Join(parts, ", ")
}
