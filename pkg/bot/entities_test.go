package bot

import (
	"testing"
	"time"

	"restobot-be/pkg/nlu"
	"restobot-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestValidDate(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"today", today, true},
		{"future", nextWeek, true},
		{"past", yesterday, false},
		{"wrong format", "07/15/2026", false},
		{"prose", "next friday", false},
		{"impossible month", "2026-13-01", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDate(tt.input))
		})
	}
}

func TestValidTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"evening", "19:30", true},
		{"midnight", "00:00", true},
		{"last minute", "23:59", true},
		{"hour out of range", "24:00", false},
		{"minute out of range", "12:60", false},
		{"single digit hour", "9:30", false},
		{"prose", "half past seven", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidTime(tt.input))
		})
	}
}

func TestFirstInt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"bare number", "4", 4, true},
		{"number in prose", "make it 3 please", 3, true},
		{"first of several", "change 2 to 5", 2, true},
		{"negative", "-1", -1, true},
		{"no number", "a couple", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstInt(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMergeEntitiesDiscardsInvalidSilently(t *testing.T) {
	var c store.ContextData
	future := time.Now().AddDate(0, 0, 3).Format("2006-01-02")

	MergeEntities(&c, []nlu.Entity{
		{Category: nlu.CategoryRestaurantName, Text: "  Pizza Palace  "},
		{Category: nlu.CategoryDate, Text: "whenever"},
		{Category: nlu.CategoryTime, Text: "19:30"},
		{Category: nlu.CategoryPartySize, Text: "table for 6"},
		{Category: nlu.CategoryQuantity, Text: "zero actually"},
		{Category: nlu.CategoryRatingValue, Text: "4.5 stars"},
		{Category: nlu.CategoryPriceRange, Text: "Mid"},
	})

	assert.Equal(t, "Pizza Palace", c.RestaurantName)
	assert.Empty(t, c.Date) // invalid date left the slot untouched
	assert.Equal(t, "19:30", c.Time)
	assert.Equal(t, 6, c.PartySize)
	assert.Zero(t, c.Quantity)
	assert.Equal(t, 4.5, c.MinRating)
	assert.Equal(t, "mid", c.PriceRange)

	// A later turn overwrites and fills in.
	MergeEntities(&c, []nlu.Entity{
		{Category: nlu.CategoryRestaurantName, Text: "Spice Garden"},
		{Category: nlu.CategoryDate, Text: future},
	})
	assert.Equal(t, "Spice Garden", c.RestaurantName)
	assert.Equal(t, future, c.Date)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("user@example.com"))
	assert.False(t, ValidEmail("user@example"))
	assert.False(t, ValidEmail("not an email"))
	assert.False(t, ValidEmail(""))
}
