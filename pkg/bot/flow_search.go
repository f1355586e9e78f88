package bot

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"restobot-be/pkg/store"
)

var allRestaurantsRe = regexp.MustCompile(`(?i)all\s+restaurants`)

func (e *Engine) searchRestaurantFlow() *Flow {
	return &Flow{
		Name:    IntentSearchRestaurant,
		Initial: stepStart,
		Steps: map[string]StepHandler{
			stepStart: e.searchRestaurants,
		},
	}
}

func (e *Engine) searchRestaurants(ctx context.Context, t *Turn) StepResult {
	c := &t.Profile.Context

	if allRestaurantsRe.MatchString(t.Text) {
		results, err := e.deps.Restaurants.ListRestaurants(ctx)
		if err != nil {
			return e.fail(t, IntentSearchRestaurant, err)
		}
		if len(results) == 0 {
			return done(Text("🤔 No restaurants found."))
		}
		c.LastSearchResults = results
		return done(Text("🏁 Here are all available restaurants:\n\n%s", displayRestaurants(results)))
	}

	if c.RestaurantName == "" && c.Cuisine == "" && c.Location == "" && c.PriceRange == "" && c.MinRating == 0 {
		return stay(Text("❓ Please specify one or more of:\n• Restaurant name\n• Cuisine\n• Location\n• Price range\n• Minimum rating"))
	}

	// The classifier sometimes tags the same span as both cuisine and
	// location, or echoes the restaurant name as a location.
	if c.Cuisine != "" && c.Location != "" &&
		strings.Contains(strings.ToLower(c.Location), strings.ToLower(c.Cuisine)) {
		c.Location = ""
	}
	if c.RestaurantName != "" && strings.EqualFold(c.Location, c.RestaurantName) {
		c.Location = ""
	}

	var results []store.RestaurantSummary
	var err error
	if c.RestaurantName != "" {
		found, ferr := e.deps.Restaurants.FindRestaurant(ctx, c.RestaurantName)
		if ferr != nil {
			return e.fail(t, IntentSearchRestaurant, ferr)
		}
		if found != nil {
			results = []store.RestaurantSummary{*found}
		}
	} else {
		results, err = e.deps.Restaurants.SearchRestaurants(ctx, SearchFilters{
			Cuisine:    c.Cuisine,
			Location:   c.Location,
			PriceRange: c.PriceRange,
			MinRating:  c.MinRating,
		})
		if err != nil {
			return e.fail(t, IntentSearchRestaurant, err)
		}
	}

	qualifier := searchQualifier(c)
	if len(results) == 0 {
		return done(Text("🤔 No results found%s. Try another query.", qualifier))
	}
	c.LastSearchResults = results
	return done(Text("🔍 Found the following restaurants%s:\n\n%s", qualifier, displayRestaurants(results)))
}

func searchQualifier(c *store.ContextData) string {
	var b strings.Builder
	if c.RestaurantName != "" {
		fmt.Fprintf(&b, " for %q", c.RestaurantName)
	}
	if c.Cuisine != "" {
		fmt.Fprintf(&b, " with %s cuisine", c.Cuisine)
	}
	if c.Location != "" {
		fmt.Fprintf(&b, " in %s", c.Location)
	}
	if c.PriceRange != "" {
		fmt.Fprintf(&b, " priced %s", c.PriceRange)
	}
	if c.MinRating > 0 {
		fmt.Fprintf(&b, " rated %.1f+", c.MinRating)
	}
	return b.String()
}

func displayRestaurants(results []store.RestaurantSummary) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "• %s — %s, %s, %s\n\n(Rating: %.1f, Price Range: %s)",
			r.Name, r.Cuisine, r.City, r.Area, r.Rating, r.PriceRange)
	}
	b.WriteString("\n\n👉 Would you like to:\n\n\n• 📋 Get menu for a specific restaurant\n\n• 🗓️ Book a table?")
	return b.String()
}

func (e *Engine) showMenuFlow() *Flow {
	return &Flow{
		Name:    IntentShowMenu,
		Initial: stepStart,
		Steps: map[string]StepHandler{
			stepStart: e.showMenu,
		},
	}
}

// showMenu groups the menu by diet type the way the kitchen boards do.
func (e *Engine) showMenu(ctx context.Context, t *Turn) StepResult {
	name := t.Profile.Context.RestaurantName
	if name == "" {
		if trimmed := strings.TrimSpace(t.Text); trimmed != "" && t.Profile.Step != "" {
			name = trimmed
		} else {
			return stay(Text("❓ Please specify the name of the restaurant to view its menu."))
		}
	}
	menu, err := e.deps.Menus.FindMenu(ctx, name)
	if err != nil {
		return e.fail(t, IntentShowMenu, err)
	}
	if len(menu) == 0 {
		return done(Text("😔 Sorry, I couldn't find a menu for %q. Try another restaurant?", name))
	}

	grouped := map[string][]MenuItem{}
	var order []string
	for _, item := range menu {
		diet := item.DietType
		if diet == "" {
			diet = "Other"
		}
		if _, seen := grouped[diet]; !seen {
			order = append(order, diet)
		}
		grouped[diet] = append(grouped[diet], item)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ Menu for **%s**:\n\n", name)
	for _, diet := range order {
		fmt.Fprintf(&b, "👑 %s:\n", strings.ToUpper(diet))
		for _, item := range grouped[diet] {
			fmt.Fprintf(&b, "\n\n• %s — ₹%.2f", item.Name, item.Price)
			if item.Description != "" {
				fmt.Fprintf(&b, "\n  💡 %s", item.Description)
			}
		}
		b.WriteString("\n\n")
	}
	b.WriteString("👉 Would you like to:\n\n• 🛍️ Add an item to your cart\n\n• 📋 View another menu\n\n• 🗓️ Reserve a table?")
	return done(plain(b.String()))
}
