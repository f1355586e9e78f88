package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartTotal(t *testing.T) {
	p := NewProfile("conv-1")
	assert.Zero(t, p.CartTotal())

	p.Cart = []CartLine{
		{ItemID: 1, ItemName: "Margherita Pizza", Quantity: 2, UnitPrice: 349},
		{ItemID: 2, ItemName: "Garlic Bread", Quantity: 1, UnitPrice: 149},
	}
	assert.Equal(t, 847.0, p.CartTotal())
}

func TestClearFlowKeepsCartAndIdentity(t *testing.T) {
	p := NewProfile("conv-1")
	p.IsAuthenticated = true
	p.UserID = 7
	p.Email = "user@example.com"
	p.ActiveIntent = "MakeReservation"
	p.Step = "awaiting_date"
	p.Context.RestaurantName = "Pizza Palace"
	p.Context.PartySize = 4
	p.Cart = []CartLine{{ItemID: 1, Quantity: 1, UnitPrice: 100}}

	p.ClearFlow()

	assert.Empty(t, p.ActiveIntent)
	assert.Empty(t, p.Step)
	assert.Empty(t, p.Context.RestaurantName)
	assert.Zero(t, p.Context.PartySize)

	// Identity and cart survive a flow reset.
	assert.True(t, p.IsAuthenticated)
	assert.Equal(t, uint(7), p.UserID)
	assert.Len(t, p.Cart, 1)
}

func TestNewProfileStartsInAuthGate(t *testing.T) {
	p := NewProfile("conv-9")
	assert.Equal(t, "conv-9", p.ConversationID)
	assert.False(t, p.IsAuthenticated)
	assert.Equal(t, IntentAuthentication, p.ActiveIntent)
	assert.Equal(t, StepChoosingAuthMode, p.Step)
	assert.NotNil(t, p.Cart)
}
