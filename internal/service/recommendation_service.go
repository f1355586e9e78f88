package service

import (
	"context"

	"restobot-be/internal/repository/specification"
	"restobot-be/internal/repository/unitofwork"
	"restobot-be/pkg/bot"
)

const recommendationLimit = 5

type IRecommendationService interface {
	bot.Recommender
}

type recommendationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRecommendationService(uowFactory unitofwork.RepositoryFactory) IRecommendationService {
	return &recommendationService{uowFactory: uowFactory}
}

// Recommend ranks dishes by their average review rating. An empty category
// ranks across the whole catalog.
func (s *recommendationService) Recommend(ctx context.Context, category string) ([]bot.MenuItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.MenuItemRepository().TopRated(ctx, category, recommendationLimit)
	if err != nil {
		return nil, err
	}
	result := make([]bot.MenuItem, 0, len(items))
	for _, item := range items {
		restaurantName := ""
		restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.ByID{ID: item.RestaurantId})
		if err != nil {
			return nil, err
		}
		if restaurant != nil {
			restaurantName = restaurant.Name
		}
		result = append(result, bot.MenuItem{
			ID:          item.Id,
			Name:        item.Name,
			Description: item.Description,
			DietType:    item.DietType,
			Price:       item.Price,
			Restaurant:  restaurantName,
		})
	}
	return result, nil
}
