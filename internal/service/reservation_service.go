package service

import (
	"context"
	"time"

	"restobot-be/internal/entity"
	"restobot-be/internal/repository/specification"
	"restobot-be/internal/repository/unitofwork"
	"restobot-be/pkg/bot"
	"restobot-be/pkg/store"
)

type IReservationService interface {
	bot.ReservationBook
}

type reservationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewReservationService(uowFactory unitofwork.RepositoryFactory) IReservationService {
	return &reservationService{uowFactory: uowFactory}
}

// CreateReservation returns nil, nil when the restaurant cannot be resolved.
func (s *reservationService) CreateReservation(ctx context.Context, userID uint, restaurantName, date, timeOfDay string, partySize int, notes string) (*store.ReservationSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.NameLike{Name: restaurantName})
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, nil
	}

	reservation := &entity.Reservation{
		UserId:          userID,
		RestaurantId:    restaurant.Id,
		RestaurantName:  restaurant.Name,
		ReservationDate: date,
		ReservationTime: timeOfDay,
		PartySize:       partySize,
		Notes:           notes,
		Status:          entity.ReservationStatusConfirmed,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := uow.ReservationRepository().Create(ctx, reservation); err != nil {
		return nil, err
	}
	summary := toReservationSummary(reservation, restaurant.Name)
	return &summary, nil
}

// ListReservations returns upcoming confirmed reservations only, soonest
// first.
func (s *reservationService) ListReservations(ctx context.Context, userID uint) ([]store.ReservationSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	today := time.Now().Format("2006-01-02")
	reservations, err := uow.ReservationRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userID},
		specification.ByStatus{Status: string(entity.ReservationStatusConfirmed)},
		specification.DateOnOrAfter{Date: today},
		specification.OrderBy{Field: "reservation_date"},
	)
	if err != nil {
		return nil, err
	}
	summaries := make([]store.ReservationSummary, 0, len(reservations))
	for _, r := range reservations {
		name, err := s.restaurantName(ctx, uow, r.RestaurantId)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, toReservationSummary(r, name))
	}
	return summaries, nil
}

func (s *reservationService) CancelReservation(ctx context.Context, userID, reservationID uint) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	reservation, err := uow.ReservationRepository().FindOne(ctx,
		specification.ByID{ID: reservationID},
		specification.OwnedBy{UserID: userID},
	)
	if err != nil {
		return false, err
	}
	if reservation == nil || reservation.Status != entity.ReservationStatusConfirmed {
		return false, nil
	}
	reservation.Status = entity.ReservationStatusCancelled
	reservation.UpdatedAt = time.Now()
	if err := uow.ReservationRepository().Update(ctx, reservation); err != nil {
		return false, err
	}
	return true, nil
}

func (s *reservationService) ModifyReservation(ctx context.Context, userID, reservationID uint, date, timeOfDay string, partySize int) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	reservation, err := uow.ReservationRepository().FindOne(ctx,
		specification.ByID{ID: reservationID},
		specification.OwnedBy{UserID: userID},
	)
	if err != nil {
		return false, err
	}
	if reservation == nil || reservation.Status != entity.ReservationStatusConfirmed {
		return false, nil
	}
	reservation.ReservationDate = date
	reservation.ReservationTime = timeOfDay
	reservation.PartySize = partySize
	reservation.UpdatedAt = time.Now()
	if err := uow.ReservationRepository().Update(ctx, reservation); err != nil {
		return false, err
	}
	return true, nil
}

func (s *reservationService) restaurantName(ctx context.Context, uow unitofwork.UnitOfWork, restaurantID uint) (string, error) {
	restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.ByID{ID: restaurantID})
	if err != nil {
		return "", err
	}
	if restaurant == nil {
		return "", nil
	}
	return restaurant.Name, nil
}

func toReservationSummary(r *entity.Reservation, restaurantName string) store.ReservationSummary {
	return store.ReservationSummary{
		ID:             r.Id,
		RestaurantName: restaurantName,
		Date:           r.ReservationDate,
		Time:           r.ReservationTime,
		PartySize:      r.PartySize,
	}
}
