package mapper

import (
	"restobot-be/internal/entity"
	"restobot-be/internal/model"
)

type RestaurantMapper struct{}

func NewRestaurantMapper() *RestaurantMapper {
	return &RestaurantMapper{}
}

func (m *RestaurantMapper) ToEntity(r *model.Restaurant) *entity.Restaurant {
	if r == nil {
		return nil
	}
	return &entity.Restaurant{
		Id:         r.Id,
		Name:       r.Name,
		Cuisine:    r.Cuisine,
		City:       r.City,
		Area:       r.Area,
		PriceRange: r.PriceRange,
		Rating:     r.Rating,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (m *RestaurantMapper) ToModel(r *entity.Restaurant) *model.Restaurant {
	if r == nil {
		return nil
	}
	return &model.Restaurant{
		Id:         r.Id,
		Name:       r.Name,
		Cuisine:    r.Cuisine,
		City:       r.City,
		Area:       r.Area,
		PriceRange: r.PriceRange,
		Rating:     r.Rating,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (m *RestaurantMapper) ToEntities(models []*model.Restaurant) []*entity.Restaurant {
	entities := make([]*entity.Restaurant, 0, len(models))
	for _, mr := range models {
		entities = append(entities, m.ToEntity(mr))
	}
	return entities
}

type MenuItemMapper struct{}

func NewMenuItemMapper() *MenuItemMapper {
	return &MenuItemMapper{}
}

func (m *MenuItemMapper) ToEntity(i *model.MenuItem) *entity.MenuItem {
	if i == nil {
		return nil
	}
	return &entity.MenuItem{
		Id:           i.Id,
		RestaurantId: i.RestaurantId,
		Name:         i.Name,
		Description:  i.Description,
		DietType:     i.DietType,
		Price:        i.Price,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func (m *MenuItemMapper) ToModel(i *entity.MenuItem) *model.MenuItem {
	if i == nil {
		return nil
	}
	return &model.MenuItem{
		Id:           i.Id,
		RestaurantId: i.RestaurantId,
		Name:         i.Name,
		Description:  i.Description,
		DietType:     i.DietType,
		Price:        i.Price,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func (m *MenuItemMapper) ToEntities(models []*model.MenuItem) []*entity.MenuItem {
	entities := make([]*entity.MenuItem, 0, len(models))
	for _, mi := range models {
		entities = append(entities, m.ToEntity(mi))
	}
	return entities
}

type ItemReviewMapper struct{}

func NewItemReviewMapper() *ItemReviewMapper {
	return &ItemReviewMapper{}
}

func (m *ItemReviewMapper) ToEntity(r *model.ItemReview) *entity.ItemReview {
	if r == nil {
		return nil
	}
	return &entity.ItemReview{
		Id:         r.Id,
		MenuItemId: r.MenuItemId,
		UserId:     r.UserId,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *ItemReviewMapper) ToModel(r *entity.ItemReview) *model.ItemReview {
	if r == nil {
		return nil
	}
	return &model.ItemReview{
		Id:         r.Id,
		MenuItemId: r.MenuItemId,
		UserId:     r.UserId,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
