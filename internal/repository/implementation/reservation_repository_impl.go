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
	"gorm.io/gorm/clause"
)

type ReservationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReservationMapper
}

func NewReservationRepository(db *gorm.DB) contract.ReservationRepository {
	return &ReservationRepositoryImpl{
		db:     db,
		mapper: mapper.NewReservationMapper(),
	}
}

func (r *ReservationRepositoryImpl) Create(ctx context.Context, reservation *entity.Reservation) error {
	modelReservation := r.mapper.ToModel(reservation)
	if err := r.db.WithContext(ctx).Create(modelReservation).Error; err != nil {
		return err
	}
	restaurantName := reservation.RestaurantName
	*reservation = *r.mapper.ToEntity(modelReservation)
	reservation.RestaurantName = restaurantName
	return nil
}

func (r *ReservationRepositoryImpl) Update(ctx context.Context, reservation *entity.Reservation) error {
	modelReservation := r.mapper.ToModel(reservation)
	return r.db.WithContext(ctx).Save(modelReservation).Error
}

func (r *ReservationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Reservation, error) {
	var modelReservation model.Reservation
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelReservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelReservation), nil
}

func (r *ReservationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reservation, error) {
	var modelReservations []*model.Reservation
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelReservations).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelReservations), nil
}

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ConversationRepositoryImpl) Save(ctx context.Context, snapshot *entity.ConversationSnapshot) error {
	modelSnapshot, err := r.mapper.ToModel(snapshot)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "conversation_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "profile", "updated_at"}),
		}).
		Create(modelSnapshot).Error
}

func (r *ConversationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConversationSnapshot, error) {
	var modelSnapshot model.ConversationSnapshot
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelSnapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelSnapshot)
}
