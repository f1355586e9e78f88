package service

import (
	"context"

	"restobot-be/internal/dto"
	"restobot-be/internal/entity"
	"restobot-be/internal/repository/specification"
	"restobot-be/internal/repository/unitofwork"
	"restobot-be/pkg/bot"
	"restobot-be/pkg/store"
)

// IRestaurantService backs both the browsing REST endpoints and the dialog
// engine's directory/menu lookups.
type IRestaurantService interface {
	bot.RestaurantDirectory
	bot.MenuProvider
	ListAll(ctx context.Context) ([]dto.RestaurantResponse, error)
	Search(ctx context.Context, q *dto.SearchRestaurantQuery) ([]dto.RestaurantResponse, error)
	Menu(ctx context.Context, restaurantName string) ([]dto.MenuItemResponse, error)
}

type restaurantService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRestaurantService(uowFactory unitofwork.RepositoryFactory) IRestaurantService {
	return &restaurantService{uowFactory: uowFactory}
}

// FindRestaurant resolves a fuzzy name to the first match.
func (s *restaurantService) FindRestaurant(ctx context.Context, name string) (*store.RestaurantSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.NameLike{Name: name})
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, nil
	}
	summary := toSummary(restaurant)
	return &summary, nil
}

func (s *restaurantService) SearchRestaurants(ctx context.Context, f bot.SearchFilters) ([]store.RestaurantSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	var specs []specification.Specification
	if f.Cuisine != "" {
		specs = append(specs, specification.CuisineLike{Cuisine: f.Cuisine})
	}
	if f.Location != "" {
		specs = append(specs, specification.LocationLike{Location: f.Location})
	}
	if f.PriceRange != "" {
		specs = append(specs, specification.ByPriceRange{PriceRange: f.PriceRange})
	}
	if f.MinRating > 0 {
		specs = append(specs, specification.MinRating{Rating: f.MinRating})
	}
	specs = append(specs, specification.OrderBy{Field: "rating", Desc: true})

	restaurants, err := uow.RestaurantRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toSummaries(restaurants), nil
}

func (s *restaurantService) ListRestaurants(ctx context.Context) ([]store.RestaurantSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	restaurants, err := uow.RestaurantRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}
	return toSummaries(restaurants), nil
}

func (s *restaurantService) FindMenu(ctx context.Context, restaurantName string) ([]bot.MenuItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.NameLike{Name: restaurantName})
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, nil
	}
	items, err := uow.MenuItemRepository().FindAll(ctx,
		specification.ByRestaurant{RestaurantID: restaurant.Id},
		specification.OrderBy{Field: "diet_type"},
	)
	if err != nil {
		return nil, err
	}
	return toBotItems(items, restaurant.Name), nil
}

func (s *restaurantService) FindMenuItem(ctx context.Context, itemName, restaurantName string) (*bot.MenuItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.NameLike{Name: restaurantName})
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, nil
	}
	item, err := uow.MenuItemRepository().FindOne(ctx,
		specification.ByRestaurant{RestaurantID: restaurant.Id},
		specification.NameLike{Name: itemName},
	)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	botItem := toBotItem(item, restaurant.Name)
	return &botItem, nil
}

func (s *restaurantService) ListAll(ctx context.Context) ([]dto.RestaurantResponse, error) {
	summaries, err := s.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	return toRestaurantResponses(summaries), nil
}

func (s *restaurantService) Search(ctx context.Context, q *dto.SearchRestaurantQuery) ([]dto.RestaurantResponse, error) {
	summaries, err := s.SearchRestaurants(ctx, bot.SearchFilters{
		Cuisine:    q.Cuisine,
		Location:   q.Location,
		PriceRange: q.PriceRange,
		MinRating:  q.MinRating,
	})
	if err != nil {
		return nil, err
	}
	return toRestaurantResponses(summaries), nil
}

func (s *restaurantService) Menu(ctx context.Context, restaurantName string) ([]dto.MenuItemResponse, error) {
	items, err := s.FindMenu(ctx, restaurantName)
	if err != nil {
		return nil, err
	}
	if items == nil { // restaurant not found
		return nil, nil
	}
	responses := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, dto.MenuItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			DietType:    item.DietType,
			Price:       item.Price,
		})
	}
	return responses, nil
}

func toSummary(r *entity.Restaurant) store.RestaurantSummary {
	return store.RestaurantSummary{
		ID:         r.Id,
		Name:       r.Name,
		Cuisine:    r.Cuisine,
		City:       r.City,
		Area:       r.Area,
		PriceRange: r.PriceRange,
		Rating:     r.Rating,
	}
}

func toSummaries(restaurants []*entity.Restaurant) []store.RestaurantSummary {
	summaries := make([]store.RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		summaries = append(summaries, toSummary(r))
	}
	return summaries
}

func toBotItem(i *entity.MenuItem, restaurantName string) bot.MenuItem {
	return bot.MenuItem{
		ID:          i.Id,
		Name:        i.Name,
		Description: i.Description,
		DietType:    i.DietType,
		Price:       i.Price,
		Restaurant:  restaurantName,
	}
}

func toBotItems(items []*entity.MenuItem, restaurantName string) []bot.MenuItem {
	botItems := make([]bot.MenuItem, 0, len(items))
	for _, i := range items {
		botItems = append(botItems, toBotItem(i, restaurantName))
	}
	return botItems
}

func toRestaurantResponses(summaries []store.RestaurantSummary) []dto.RestaurantResponse {
	responses := make([]dto.RestaurantResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, dto.RestaurantResponse{
			ID:         s.ID,
			Name:       s.Name,
			Cuisine:    s.Cuisine,
			City:       s.City,
			Area:       s.Area,
			PriceRange: s.PriceRange,
			Rating:     s.Rating,
		})
	}
	return responses
}
