package bot

import (
	"context"
	"fmt"
	"strings"

	"restobot-be/pkg/events"
	"restobot-be/pkg/store"
)

const (
	stepAwaitingDelivery   = "awaiting_delivery_method"
	stepConfirmingOrder    = "confirming_order"
	stepAwaitingPayMode    = "awaiting_payment_mode"
	stepPendingPayAction   = "pending_payment_action"
	stepAwaitingPayOrderID = "awaiting_order_id"
)

func (e *Engine) payOrderFlow() *Flow {
	return &Flow{
		Name:    IntentPayOrder,
		Initial: stepStart,
		Steps: map[string]StepHandler{
			stepStart:            e.payOrderStart,
			stepAwaitingDelivery: e.payOrderDelivery,
			stepConfirmingOrder:  e.payOrderConfirm,
			stepAwaitingPayMode:  e.payOrderMode,
		},
	}
}

// payOrderStart is checkout: review the cart, pick a delivery method, then
// ask for an explicit go-ahead before the order is created.
func (e *Engine) payOrderStart(_ context.Context, t *Turn) StepResult {
	p := t.Profile
	if len(p.Cart) == 0 {
		return done(Text("🛒 Your cart is empty. Add some items before checking out!"))
	}
	if p.Context.DeliveryMethod == "" {
		return goTo(stepAwaitingDelivery,
			Text("🧾 **Here's your order:**\n\n%s\n\n🧮 **Total:** ₹%.2f\n\n🚚 Would you like **pickup** or **delivery**?",
				cartLines(p.Cart), p.CartTotal()))
	}
	return e.askOrderConfirmation(t)
}

func (e *Engine) payOrderDelivery(_ context.Context, t *Turn) StepResult {
	c := &t.Profile.Context
	lower := t.Lower()
	switch {
	case strings.Contains(lower, "pickup"):
		c.DeliveryMethod = "pickup"
	case strings.Contains(lower, "delivery"):
		c.DeliveryMethod = "delivery"
	}
	if c.DeliveryMethod == "" {
		return stay(Text("❓ Please type \"pickup\" or \"delivery\"."))
	}
	return e.askOrderConfirmation(t)
}

func (e *Engine) askOrderConfirmation(t *Turn) StepResult {
	p := t.Profile
	return goTo(stepConfirmingOrder,
		Text("✅ Total ₹%.2f by **%s**.\n\n👉 Type \"confirm order\" to place it, or anything else to abort.",
			p.CartTotal(), p.Context.DeliveryMethod))
}

func (e *Engine) payOrderConfirm(ctx context.Context, t *Turn) StepResult {
	if !strings.Contains(t.Lower(), "confirm") {
		return done(Text("❌ Okay, I haven't placed the order. Your cart is untouched."))
	}
	return e.placeOrder(ctx, t)
}

func (e *Engine) placeOrder(ctx context.Context, t *Turn) StepResult {
	p := t.Profile
	order, err := e.deps.Orders.CreateOrder(ctx, p.UserID, p.Cart, p.Context.DeliveryMethod)
	if err != nil {
		return e.fail(t, IntentPayOrder, err)
	}
	p.Cart = []store.CartLine{}
	p.Context.OrderID = order.ID
	e.emit(ctx, events.TypeOrderPlaced, map[string]interface{}{
		"order_id":        order.ID,
		"user_id":         p.UserID,
		"total":           order.TotalAmount,
		"delivery_method": p.Context.DeliveryMethod,
	})
	return goTo(stepAwaitingPayMode,
		Text("🧾 Order #%d placed! Total: ₹%.2f\n\n💳 How would you like to pay?\n\n• Type \"pay now\" to pay online\n\n• Type \"cash\" to pay on %s\n\n• Type \"later\" to decide later",
			order.ID, order.TotalAmount, p.Context.DeliveryMethod))
}

// payOrderMode settles deterministically: "pay now" records a completed
// online payment, "cash" records a pending cash-on-delivery one, any other
// reply leaves the order awaiting payment.
func (e *Engine) payOrderMode(ctx context.Context, t *Turn) StepResult {
	p := t.Profile
	orderID := p.Context.OrderID
	order, err := e.deps.Orders.GetOrder(ctx, p.UserID, orderID)
	if err != nil {
		return e.fail(t, IntentPayOrder, err)
	}
	if order == nil {
		return done(Text("❓ I lost track of that order. Type \"check order status\" to see your orders."))
	}
	lower := t.Lower()
	var mode, status, msg string
	switch {
	case strings.Contains(lower, "pay now") || strings.Contains(lower, "online") || strings.Contains(lower, "card"):
		mode, status = store.PaymentModeOnline, store.PaymentStatusPaid
		msg = fmt.Sprintf("✅ Payment of ₹%.2f for order #%d completed. Thank you!", order.TotalAmount, orderID)
	case strings.Contains(lower, "cash"):
		mode, status = store.PaymentModeCashOnDelivery, store.PaymentStatusPending
		msg = fmt.Sprintf("💵 Got it! Pay ₹%.2f in cash when you receive order #%d.", order.TotalAmount, orderID)
	default:
		mode, status = store.PaymentModeOnline, store.PaymentStatusPending
		msg = fmt.Sprintf("⏳ No problem. Order #%d is awaiting payment. Type \"check payment status\" anytime.", orderID)
	}
	if err := e.deps.Payments.RecordPayment(ctx, orderID, order.TotalAmount, mode, status); err != nil {
		return e.fail(t, IntentPayOrder, err)
	}
	e.emit(ctx, events.TypePaymentRecorded, map[string]interface{}{
		"order_id": orderID,
		"user_id":  p.UserID,
		"amount":   order.TotalAmount,
		"mode":     mode,
		"status":   status,
	})
	return done(Text("%s%s", msg, msgReservationNextSteps))
}

func (e *Engine) checkPaymentStatusFlow() *Flow {
	return &Flow{
		Name:    IntentCheckPaymentStatus,
		Initial: stepStart,
		Steps: map[string]StepHandler{
			stepStart:              e.checkPaymentStart,
			stepAwaitingPayOrderID: e.checkPaymentOrderID,
			stepPendingPayAction:   e.checkPaymentPendingAction,
		},
	}
}

func (e *Engine) checkPaymentStart(ctx context.Context, t *Turn) StepResult {
	if t.Profile.Context.OrderID == 0 {
		return goTo(stepAwaitingPayOrderID, Text("❓ Please provide the Order ID you'd like to check."))
	}
	return e.reportPaymentStatus(ctx, t, t.Profile.Context.OrderID)
}

func (e *Engine) checkPaymentOrderID(ctx context.Context, t *Turn) StepResult {
	id, ok := FirstInt(t.Text)
	if !ok || id <= 0 {
		return stay(Text("❓ Please enter a valid Order ID."))
	}
	return e.reportPaymentStatus(ctx, t, uint(id))
}

func (e *Engine) reportPaymentStatus(ctx context.Context, t *Turn, orderID uint) StepResult {
	p := t.Profile
	status, err := e.deps.Payments.Status(ctx, p.UserID, orderID)
	if err != nil {
		return e.fail(t, IntentCheckPaymentStatus, err)
	}
	switch status {
	case "":
		return done(Text("❓ No payment information found for order %d.", orderID))
	case store.PaymentStatusPaid:
		return done(Text("✅ Payment for order %d has been successfully completed.\n\n👉 What would you like to do next?\n• 🗓️ Book a table\n• 🍔 Place a new order\n• 📋 View my orders\n• ❓ Ask for help", orderID))
	case store.PaymentStatusPending:
		p.Context.OrderID = orderID
		return goTo(stepPendingPayAction,
			Text("⏳ Payment for order %d is still *pending*. Would you like to:\n\n• 💳 Try paying again?\n• ❌ Cancel this order?\n\nPlease type \"pay\" to try again or \"cancel order\" to cancel it.", orderID))
	case store.PaymentStatusFailed:
		p.Context.OrderID = orderID
		return goTo(stepPendingPayAction,
			Text("⚠️ Payment for order %d has *failed*.\n\n👉 Would you like to try paying again, or cancel the order?\n• Type \"pay\" to try again\n• Type \"cancel order\" to cancel it.", orderID))
	}
	return done(Text("ℹ️ The payment status for order %d is *%s*.\n\n👉 Let me know if you'd like help with next steps!", orderID, status))
}

func (e *Engine) checkPaymentPendingAction(ctx context.Context, t *Turn) StepResult {
	p := t.Profile
	orderID := p.Context.OrderID
	lower := t.Lower()
	switch {
	case strings.Contains(lower, "pay"):
		order, err := e.deps.Orders.GetOrder(ctx, p.UserID, orderID)
		if err != nil {
			return e.fail(t, IntentCheckPaymentStatus, err)
		}
		if order == nil {
			return done(Text("❓ No order found for Order ID %d.", orderID))
		}
		if err := e.deps.Payments.RecordPayment(ctx, orderID, order.TotalAmount, store.PaymentModeOnline, store.PaymentStatusPaid); err != nil {
			return e.fail(t, IntentCheckPaymentStatus, err)
		}
		e.emit(ctx, events.TypePaymentRecorded, map[string]interface{}{
			"order_id": orderID,
			"user_id":  p.UserID,
			"amount":   order.TotalAmount,
			"mode":     store.PaymentModeOnline,
			"status":   store.PaymentStatusPaid,
		})
		return done(Text("✅ Payment of ₹%.2f for order #%d completed. Thank you!", order.TotalAmount, orderID))
	case strings.Contains(lower, "cancel"):
		return e.doCancelOrders(ctx, t, []uint{orderID})
	}
	return stay(Text("❓ Please respond with \"pay\" or \"cancel order\" for order %d.", orderID))
}
