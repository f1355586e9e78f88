package mapper

import (
	"restobot-be/internal/entity"
	"restobot-be/internal/model"
)

type ReservationMapper struct{}

func NewReservationMapper() *ReservationMapper {
	return &ReservationMapper{}
}

func (m *ReservationMapper) ToEntity(r *model.Reservation) *entity.Reservation {
	if r == nil {
		return nil
	}
	return &entity.Reservation{
		Id:              r.Id,
		UserId:          r.UserId,
		RestaurantId:    r.RestaurantId,
		ReservationDate: r.ReservationDate,
		ReservationTime: r.ReservationTime,
		PartySize:       r.PartySize,
		Notes:           r.Notes,
		Status:          entity.ReservationStatus(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (m *ReservationMapper) ToModel(r *entity.Reservation) *model.Reservation {
	if r == nil {
		return nil
	}
	return &model.Reservation{
		Id:              r.Id,
		UserId:          r.UserId,
		RestaurantId:    r.RestaurantId,
		ReservationDate: r.ReservationDate,
		ReservationTime: r.ReservationTime,
		PartySize:       r.PartySize,
		Notes:           r.Notes,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (m *ReservationMapper) ToEntities(models []*model.Reservation) []*entity.Reservation {
	entities := make([]*entity.Reservation, 0, len(models))
	for _, mr := range models {
		entities = append(entities, m.ToEntity(mr))
	}
	return entities
}
