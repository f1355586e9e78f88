package bot

import (
	"context"
	"fmt"
	"strings"
)

const stepAwaitingCategory = "awaiting_category"

func (e *Engine) recommendItemFlow() *Flow {
	return &Flow{
		Name:    IntentRecommendItem,
		Initial: stepStart,
		Steps: map[string]StepHandler{
			stepStart:            e.recommendStart,
			stepAwaitingCategory: e.recommendCategory,
		},
	}
}

func (e *Engine) recommendStart(ctx context.Context, t *Turn) StepResult {
	if t.Profile.Context.Category == "" {
		return goTo(stepAwaitingCategory,
			Text("🍳 What category or type of item would you like recommendations for? (e.g., pizza, pasta, drinks)"))
	}
	return e.recommend(ctx, t, t.Profile.Context.Category)
}

func (e *Engine) recommendCategory(ctx context.Context, t *Turn) StepResult {
	category := t.Profile.Context.Category
	if category == "" {
		category = t.Lower()
	}
	if category == "" {
		return stay(Text("❓ Please name a category, like pizza or drinks."))
	}
	return e.recommend(ctx, t, category)
}

// recommend surfaces the top-rated dishes for a category.
func (e *Engine) recommend(ctx context.Context, t *Turn, category string) StepResult {
	items, err := e.deps.Recommender.Recommend(ctx, category)
	if err != nil {
		return e.fail(t, IntentRecommendItem, err)
	}
	if len(items) == 0 {
		return done(Text("☹️ No recommendations available for %q right now. Would you like recommendations for another category?", category))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🔥 Here are some recommendations for %s:\n", category)
	for _, item := range items {
		fmt.Fprintf(&b, "• %s - ₹%.2f\n", item.Name, item.Price)
	}
	b.WriteString("\n👉 Would you like to:\n• 🛍️ Order one of these?\n• 👀 See recommendations for another category?\n• ❓ Ask for help?")
	return done(plain(b.String()))
}
