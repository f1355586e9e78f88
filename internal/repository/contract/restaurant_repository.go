package contract

import (
	"context"

	"restobot-be/internal/entity"
	"restobot-be/internal/repository/specification"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Restaurant, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Restaurant, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MenuItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuItem, error)

	// TopRated returns the best-reviewed items by average review rating,
	// optionally restricted to a diet type.
	TopRated(ctx context.Context, dietType string, limit int) ([]*entity.MenuItem, error)
}

type ItemReviewRepository interface {
	Create(ctx context.Context, review *entity.ItemReview) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ItemReview, error)
}
