package bot

import (
	"context"
	"fmt"
	"strings"

	"restobot-be/pkg/store"
)

// Step names for the cart flows.
const (
	stepStart              = "start"
	stepAwaitingRestaurant = "awaiting_restaurant"
	stepAwaitingItem       = "awaiting_item"
	stepAwaitingQuantity   = "awaiting_quantity"
	stepAwaitingRemoval    = "awaiting_removal_index"
	stepAwaitingItemIndex  = "awaiting_item_index"
	stepAwaitingNewQty     = "awaiting_new_quantity"
)

func (e *Engine) addToCartFlow() *Flow {
	return &Flow{
		Name:    IntentAddToCart,
		Initial: stepStart,
		Steps: map[string]StepHandler{
			stepStart:              e.addToCartStart,
			stepAwaitingRestaurant: e.addToCartRestaurant,
			stepAwaitingItem:       e.addToCartItem,
			stepAwaitingQuantity:   e.addToCartQuantity,
		},
	}
}

// addToCartStart short-circuits: any slot already extracted by the
// classifier skips its prompt. A fully specified utterance completes the
// flow in a single turn.
func (e *Engine) addToCartStart(ctx context.Context, t *Turn) StepResult {
	c := &t.Profile.Context
	if c.RestaurantName == "" {
		return goTo(stepAwaitingRestaurant, Text("🏪 Which restaurant is this item from?"))
	}
	if c.ItemName == "" {
		return goTo(stepAwaitingItem, Text("🍽️ What item would you like to add?"))
	}
	item, err := e.deps.Menus.FindMenuItem(ctx, c.ItemName, c.RestaurantName)
	if err != nil {
		return e.fail(t, IntentAddToCart, err)
	}
	if item == nil {
		missing := c.ItemName
		c.ItemName = ""
		return goTo(stepAwaitingItem, Text("❌ Couldn't find **%s** at %s. Try again.", missing, c.RestaurantName))
	}
	c.ItemID = item.ID
	c.ItemName = item.Name
	c.ItemPrice = item.Price
	if c.Quantity <= 0 {
		return goTo(stepAwaitingQuantity,
			Text("🍴 You've selected **%s** from %s.\n\n👉 How many would you like to add?", item.Name, c.RestaurantName))
	}
	return e.appendCartLine(t, c.Quantity)
}

func (e *Engine) addToCartRestaurant(ctx context.Context, t *Turn) StepResult {
	name := strings.TrimSpace(t.Text)
	if name == "" {
		return stay(Text("❓ Please provide the name of the restaurant."))
	}
	found, err := e.deps.Restaurants.FindRestaurant(ctx, name)
	if err != nil {
		return e.fail(t, IntentAddToCart, err)
	}
	if found == nil {
		return stay(Text("❌ Couldn't find any restaurant named \"%s\". Try again.", name))
	}
	t.Profile.Context.RestaurantName = found.Name
	return goTo(stepAwaitingItem, Text("🏪 Got it: **%s**.\n\n👉 Now tell me what item you'd like to add.", found.Name))
}

func (e *Engine) addToCartItem(ctx context.Context, t *Turn) StepResult {
	c := &t.Profile.Context
	name := strings.TrimSpace(t.Text)
	if name == "" {
		return stay(Text("❓ Please provide the name of the item you'd like to add."))
	}
	item, err := e.deps.Menus.FindMenuItem(ctx, name, c.RestaurantName)
	if err != nil {
		return e.fail(t, IntentAddToCart, err)
	}
	if item == nil {
		return stay(Text("❌ Couldn't find **%s** at %s. Try again.", name, c.RestaurantName))
	}
	c.ItemID = item.ID
	c.ItemName = item.Name
	c.ItemPrice = item.Price
	return goTo(stepAwaitingQuantity, Text("🍽️ You've selected **%s**.\n\n👉 How many would you like to add?", item.Name))
}

func (e *Engine) addToCartQuantity(ctx context.Context, t *Turn) StepResult {
	qty, ok := FirstInt(t.Text)
	if !ok || qty <= 0 {
		return stay(Text("❓ Please enter a valid quantity (number > 0)."))
	}
	return e.appendCartLine(t, qty)
}

func (e *Engine) appendCartLine(t *Turn, qty int) StepResult {
	p := t.Profile
	c := &p.Context
	p.Cart = append(p.Cart, store.CartLine{
		ItemID:         c.ItemID,
		ItemName:       c.ItemName,
		Quantity:       qty,
		UnitPrice:      c.ItemPrice,
		RestaurantName: c.RestaurantName,
	})
	return done(Text("✅ Added **%d x %s** from **%s** to your cart.\n\n🧮 Total so far: ₹%.2f"+
		"\n\nWhat next?\n\n• 🛍️ Add more items\n\n• 🧾 View your cart\n\n• ✅ Checkout\n\n• ❌ Remove an item",
		qty, c.ItemName, c.RestaurantName, p.CartTotal()))
}

func (e *Engine) removeFromCartFlow() *Flow {
	return &Flow{
		Name:    IntentRemoveFromCart,
		Initial: stepStart,
		Steps: map[string]StepHandler{
			stepStart:           e.removeFromCartStart,
			stepAwaitingRemoval: e.removeFromCartIndex,
		},
	}
}

func (e *Engine) removeFromCartStart(_ context.Context, t *Turn) StepResult {
	if len(t.Profile.Cart) == 0 {
		return done(Text("🛒 Your cart is already empty."))
	}
	return goTo(stepAwaitingRemoval,
		Text("🧾 Here's your cart:\n\n%s\n\n❓ Please enter the **item number** you want to remove (eg, 2).",
			cartLines(t.Profile.Cart)))
}

func (e *Engine) removeFromCartIndex(_ context.Context, t *Turn) StepResult {
	p := t.Profile
	index, ok := FirstInt(t.Text)
	if !ok || index < 1 || index > len(p.Cart) {
		return stay(Text("❌ Invalid number. Please enter a valid item number from your cart."))
	}
	removed := p.Cart[index-1]
	p.Cart = append(p.Cart[:index-1], p.Cart[index:]...)
	return done(Text("✅ Removed **%s** from your cart.\n\n🧮 Updated total: ₹%.2f"+
		"\n\nWhat next?\n\n• 🛍️ Add more items\n\n• 🧾 View your cart\n\n• ✅ Checkout",
		removed.ItemName, p.CartTotal()))
}

func (e *Engine) viewCartFlow() *Flow {
	return &Flow{
		Name:    IntentViewCart,
		Initial: stepStart,
		Steps: map[string]StepHandler{
			stepStart: e.viewCart,
		},
	}
}

func (e *Engine) viewCart(_ context.Context, t *Turn) StepResult {
	cart := t.Profile.Cart
	if len(cart) == 0 {
		return done(Text("🛒 Your cart is currently empty.\n\nYou can start by adding some items!"))
	}
	var b strings.Builder
	b.WriteString("🧾 **Here's what's in your cart:**\n\n")
	for i, line := range cart {
		lineTotal := float64(line.Quantity) * line.UnitPrice
		fmt.Fprintf(&b, "%d. **%s** from _%s_\n", i+1, line.ItemName, line.RestaurantName)
		fmt.Fprintf(&b, "   • %d × ₹%.2f = ₹%.2f\n\n", line.Quantity, line.UnitPrice, lineTotal)
	}
	fmt.Fprintf(&b, "🧮 **Total:** ₹%.2f\n\n", t.Profile.CartTotal())
	b.WriteString("👉 What would you like to do next?\n\n• 🛍️ Add more items\n\n• ✅ Checkout\n\n• ❌ Remove an item")
	return done(plain(b.String()))
}

func (e *Engine) editCartFlow() *Flow {
	return &Flow{
		Name:    IntentEditCart,
		Initial: stepStart,
		Steps: map[string]StepHandler{
			stepStart:             e.editCartStart,
			stepAwaitingItemIndex: e.editCartIndex,
			stepAwaitingNewQty:    e.editCartQuantity,
		},
	}
}

func (e *Engine) editCartStart(_ context.Context, t *Turn) StepResult {
	if len(t.Profile.Cart) == 0 {
		return done(Text("🛒 Your cart is empty."))
	}
	return goTo(stepAwaitingItemIndex,
		Text("🧾 Here's your cart:\n\n%s\n\n❓ Enter the item number you'd like to edit.",
			cartLines(t.Profile.Cart)))
}

func (e *Engine) editCartIndex(_ context.Context, t *Turn) StepResult {
	p := t.Profile
	index, ok := FirstInt(t.Text)
	if !ok || index < 1 || index > len(p.Cart) {
		return stay(Text("❌ Invalid number. Please enter a valid item number from your cart."))
	}
	p.Context.EditIndex = index
	return goTo(stepAwaitingNewQty, Text("✏️ Enter the new quantity for **%s**:", p.Cart[index-1].ItemName))
}

// editCartQuantity treats zero as removal.
func (e *Engine) editCartQuantity(_ context.Context, t *Turn) StepResult {
	p := t.Profile
	qty, ok := FirstInt(t.Text)
	if !ok || qty < 0 {
		return stay(Text("❌ Please enter a valid quantity (0 or more)."))
	}
	idx := p.Context.EditIndex
	if idx < 1 || idx > len(p.Cart) {
		return done(Text(msgApology))
	}
	var message string
	if qty == 0 {
		removed := p.Cart[idx-1]
		p.Cart = append(p.Cart[:idx-1], p.Cart[idx:]...)
		message = fmt.Sprintf("🗑️ Removed **%s** from your cart.", removed.ItemName)
	} else {
		p.Cart[idx-1].Quantity = qty
		message = fmt.Sprintf("✅ Updated quantity of **%s** to %d.", p.Cart[idx-1].ItemName, qty)
	}
	return done(Text("%s\n\n🧮 New total: ₹%.2f\n\nWhat next?\n\n• 🛍️ Add more items\n\n• 🧾 View cart\n\n• ✅ Checkout",
		message, p.CartTotal()))
}

func (e *Engine) clearCartFlow() *Flow {
	return &Flow{
		Name:    IntentClearCart,
		Initial: stepStart,
		Steps: map[string]StepHandler{
			stepStart: func(_ context.Context, _ *Turn) StepResult {
				return doneClearCart(Text("🧹 Your cart has been cleared.\n\nYou can start adding new items whenever you're ready."))
			},
		},
	}
}

func cartLines(cart []store.CartLine) string {
	var b strings.Builder
	for i, line := range cart {
		fmt.Fprintf(&b, "**%d. %s** (Qty: %d, ₹%.2f each)\n", i+1, line.ItemName, line.Quantity, line.UnitPrice)
	}
	return strings.TrimRight(b.String(), "\n")
}
