package implementation

import (
	"context"
	"errors"

	"restobot-be/internal/entity"
	"restobot-be/internal/mapper"
	"restobot-be/internal/model"
	"restobot-be/internal/repository/contract"
	"restobot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RestaurantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RestaurantMapper
}

func NewRestaurantRepository(db *gorm.DB) contract.RestaurantRepository {
	return &RestaurantRepositoryImpl{
		db:     db,
		mapper: mapper.NewRestaurantMapper(),
	}
}

func (r *RestaurantRepositoryImpl) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	modelRestaurant := r.mapper.ToModel(restaurant)
	if err := r.db.WithContext(ctx).Create(modelRestaurant).Error; err != nil {
		return err
	}
	*restaurant = *r.mapper.ToEntity(modelRestaurant)
	return nil
}

func (r *RestaurantRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Restaurant, error) {
	var modelRestaurant model.Restaurant
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelRestaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelRestaurant), nil
}

func (r *RestaurantRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Restaurant, error) {
	var modelRestaurants []*model.Restaurant
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelRestaurants).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelRestaurants), nil
}

func (r *RestaurantRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Restaurant{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type MenuItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MenuItemMapper
}

func NewMenuItemRepository(db *gorm.DB) contract.MenuItemRepository {
	return &MenuItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewMenuItemMapper(),
	}
}

func (r *MenuItemRepositoryImpl) Create(ctx context.Context, item *entity.MenuItem) error {
	modelItem := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(modelItem).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(modelItem)
	return nil
}

func (r *MenuItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MenuItem, error) {
	var modelItem model.MenuItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelItem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelItem), nil
}

func (r *MenuItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuItem, error) {
	var modelItems []*model.MenuItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelItems).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelItems), nil
}

func (r *MenuItemRepositoryImpl) TopRated(ctx context.Context, dietType string, limit int) ([]*entity.MenuItem, error) {
	var modelItems []*model.MenuItem
	query := r.db.WithContext(ctx).
		Model(&model.MenuItem{}).
		Select("menu_items.*, AVG(item_reviews.rating) AS avg_rating").
		Joins("JOIN item_reviews ON item_reviews.menu_item_id = menu_items.id")
	if dietType != "" {
		query = query.Where("menu_items.diet_type ILIKE ?", "%"+dietType+"%")
	}
	query = query.Group("menu_items.id").Order("avg_rating DESC").Limit(limit)

	if err := query.Find(&modelItems).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelItems), nil
}

type ItemReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ItemReviewMapper
}

func NewItemReviewRepository(db *gorm.DB) contract.ItemReviewRepository {
	return &ItemReviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewItemReviewMapper(),
	}
}

func (r *ItemReviewRepositoryImpl) Create(ctx context.Context, review *entity.ItemReview) error {
	modelReview := r.mapper.ToModel(review)
	if err := r.db.WithContext(ctx).Create(modelReview).Error; err != nil {
		return err
	}
	*review = *r.mapper.ToEntity(modelReview)
	return nil
}

func (r *ItemReviewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ItemReview, error) {
	var modelReviews []*model.ItemReview
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelReviews).Error; err != nil {
		return nil, err
	}

	reviews := make([]*entity.ItemReview, 0, len(modelReviews))
	for _, mr := range modelReviews {
		reviews = append(reviews, r.mapper.ToEntity(mr))
	}
	return reviews, nil
}
