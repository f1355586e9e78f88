package bot

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"restobot-be/pkg/nlu"
	"restobot-be/pkg/store"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
	intRe  = regexp.MustCompile(`-?\d+`)
	numRe  = regexp.MustCompile(`\d+(\.\d+)?`)
)

// ValidDate accepts YYYY-MM-DD values that parse and are not before today.
func ValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	return !d.Before(today)
}

// ValidTime accepts HH:MM 24-hour values.
func ValidTime(s string) bool {
	if !timeRe.MatchString(s) {
		return false
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	return h < 24 && m < 60
}

// FirstInt extracts the first integer substring, matching how users mix
// numbers into prose ("make it 3 please").
func FirstInt(s string) (int, bool) {
	match := intRe.FindString(s)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MergeEntities folds classifier extractions into the accumulated context.
// Invalid values are discarded without touching the slot, so a bad date or a
// non-numeric quantity leaves the field empty and the flow re-prompts. Later
// turns overwrite earlier ones per slot.
func MergeEntities(c *store.ContextData, entities []nlu.Entity) {
	for _, ent := range entities {
		text := strings.TrimSpace(ent.Text)
		if text == "" {
			continue
		}
		switch ent.Category {
		case nlu.CategoryRestaurantName:
			c.RestaurantName = text
		case nlu.CategoryCuisine:
			c.Cuisine = text
		case nlu.CategoryUserLocation:
			c.Location = text
		case nlu.CategoryPriceRange:
			c.PriceRange = strings.ToLower(text)
		case nlu.CategoryRatingValue:
			if v, err := strconv.ParseFloat(numRe.FindString(text), 64); err == nil && v > 0 {
				c.MinRating = v
			}
		case nlu.CategoryDate:
			if ValidDate(text) {
				c.Date = text
			}
		case nlu.CategoryTime:
			if ValidTime(text) {
				c.Time = text
			}
		case nlu.CategoryPartySize:
			if n, ok := FirstInt(text); ok && n > 0 {
				c.PartySize = n
			}
		case nlu.CategoryMenuItem:
			c.ItemName = text
		case nlu.CategoryQuantity:
			if n, ok := FirstInt(text); ok && n > 0 {
				c.Quantity = n
			}
		case nlu.CategoryOrderID:
			if n, ok := FirstInt(text); ok && n > 0 {
				c.OrderID = uint(n)
			}
		case nlu.CategoryReservationID:
			if n, ok := FirstInt(text); ok && n > 0 {
				c.ReservationID = uint(n)
			}
		case nlu.CategoryDeliveryMethod:
			c.DeliveryMethod = strings.ToLower(text)
		case nlu.CategoryDietType:
			c.Category = strings.ToLower(text)
		}
	}
}
