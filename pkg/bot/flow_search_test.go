package bot

import (
	"context"
	"testing"

	"restobot-be/pkg/nlu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRestaurantByCuisine(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentSearchRestaurant, nlu.Entity{Category: nlu.CategoryCuisine, Text: "Italian"})
	replies := h.turn(t, "find me italian restaurants")
	assert.Contains(t, replies[0].Text, "Pizza Palace")
	assert.NotContains(t, replies[0].Text, "Spice Garden")
	assert.Contains(t, replies[0].Text, "with Italian cuisine")
	assert.Empty(t, h.profile.ActiveIntent)
}

func TestSearchRestaurantWithoutFiltersReprompts(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentSearchRestaurant)
	replies := h.turn(t, "find me a restaurant")
	assert.Contains(t, replies[0].Text, "Please specify")
	assert.Equal(t, IntentSearchRestaurant, h.profile.ActiveIntent)

	// The follow-up carries the missing filter.
	h.intent(IntentSearchRestaurant, nlu.Entity{Category: nlu.CategoryCuisine, Text: "Indian"})
	replies = h.turn(t, "indian food")
	assert.Contains(t, replies[0].Text, "Spice Garden")
	assert.Empty(t, h.profile.ActiveIntent)
}

func TestSearchAllRestaurants(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentSearchRestaurant)
	replies := h.turn(t, "show me all restaurants")
	assert.Contains(t, replies[0].Text, "all available restaurants")
	assert.Contains(t, replies[0].Text, "Pizza Palace")
	assert.Contains(t, replies[0].Text, "Spice Garden")
	assert.Len(t, h.profile.Context.LastSearchResults, 0) // context reset on completion
}

func TestSearchDropsLocationEchoingCuisine(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentSearchRestaurant,
		nlu.Entity{Category: nlu.CategoryCuisine, Text: "Italian"},
		nlu.Entity{Category: nlu.CategoryUserLocation, Text: "italian place"},
	)
	replies := h.turn(t, "italian place nearby")
	assert.Contains(t, replies[0].Text, "with Italian cuisine")
	assert.NotContains(t, replies[0].Text, "in italian place")
}

func TestShowMenuGroupsByDietType(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentShowMenu, nlu.Entity{Category: nlu.CategoryRestaurantName, Text: "Pizza Palace"})
	replies := h.turn(t, "show me the menu for pizza palace")
	assert.Contains(t, replies[0].Text, "Menu for **Pizza Palace**")
	assert.Contains(t, replies[0].Text, "VEGETARIAN")
	assert.Contains(t, replies[0].Text, "Margherita Pizza")
	assert.Contains(t, replies[0].Text, "₹349.00")
}

func TestShowMenuPromptsThenAcceptsRawName(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentShowMenu)
	replies := h.turn(t, "show me a menu")
	assert.Contains(t, replies[0].Text, "specify the name")

	replies = h.turn(t, "Pizza Palace")
	assert.Contains(t, replies[0].Text, "Menu for **Pizza Palace**")
}

func TestShowMenuUnknownRestaurant(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentShowMenu, nlu.Entity{Category: nlu.CategoryRestaurantName, Text: "Nowhere Diner"})
	replies := h.turn(t, "menu for nowhere diner")
	assert.Contains(t, replies[0].Text, "couldn't find a menu")
	assert.Empty(t, h.profile.ActiveIntent)
}

func TestRecommendItemAsksForCategory(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	recommender := h.engine.deps.Recommender.(*fakeRecommender)
	recommender.items = []MenuItem{
		{ID: 10, Name: "Margherita Pizza", DietType: "vegetarian", Price: 349},
		{ID: 12, Name: "Chicken Biryani", DietType: "non-vegetarian", Price: 329},
	}

	h.intent(IntentRecommendItem)
	replies := h.turn(t, "recommend me something")
	assert.Contains(t, replies[0].Text, "What category")

	replies = h.turn(t, "vegetarian")
	assert.Contains(t, replies[0].Text, "Margherita Pizza")
	assert.NotContains(t, replies[0].Text, "Chicken Biryani")
}

func TestRecommendItemNothingFound(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.intent(IntentRecommendItem, nlu.Entity{Category: nlu.CategoryDietType, Text: "vegan"})
	replies := h.turn(t, "recommend vegan dishes")
	assert.Contains(t, replies[0].Text, "No recommendations available")
}

func TestShowReservationsListsUpcoming(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	_, err := h.reservations.CreateReservation(context.Background(), 1, "Pizza Palace", futureDate(), "19:30", 4, "")
	require.NoError(t, err)

	h.intent(IntentShowReservations)
	replies := h.turn(t, "show my reservations")
	assert.Contains(t, replies[0].Text, "upcoming reservations")
	assert.Contains(t, replies[0].Text, "Pizza Palace")
}
