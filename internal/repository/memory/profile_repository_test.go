package memory

import (
	"sync"
	"testing"

	"restobot-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateParksNewConversationsInAuthFlow(t *testing.T) {
	repo := NewProfileRepository()

	profile := repo.GetOrCreate("conv-1")
	require.NotNil(t, profile)
	assert.False(t, profile.IsAuthenticated)
	assert.Equal(t, store.IntentAuthentication, profile.ActiveIntent)
	assert.Equal(t, store.StepChoosingAuthMode, profile.Step)

	// Same conversation, same profile.
	again := repo.GetOrCreate("conv-1")
	assert.Same(t, profile, again)
}

func TestGetAndDelete(t *testing.T) {
	repo := NewProfileRepository()

	_, found := repo.Get("missing")
	assert.False(t, found)

	repo.GetOrCreate("conv-1")
	_, found = repo.Get("conv-1")
	assert.True(t, found)

	repo.Delete("conv-1")
	_, found = repo.Get("conv-1")
	assert.False(t, found)
}

func TestLockSerializesTurnsPerConversation(t *testing.T) {
	repo := NewProfileRepository()
	profile := repo.GetOrCreate("conv-1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := repo.Lock("conv-1")
			defer unlock()
			profile.Cart = append(profile.Cart, store.CartLine{ItemID: 1, Quantity: 1, UnitPrice: 10})
		}()
	}
	wg.Wait()

	assert.Len(t, profile.Cart, 50)
	assert.Equal(t, 500.0, profile.CartTotal())
}
