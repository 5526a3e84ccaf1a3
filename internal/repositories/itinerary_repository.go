package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wayfare/internal/models/db_models"
)

type ItineraryRepository interface {
	Save(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Itinerary, error)
	ListByUserID(ctx context.Context, userID string, page, pageSize int) ([]db_models.Itinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// Save persists the itinerary with its days and visits in one transaction.
func (r *itineraryRepository) Save(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(itinerary).Error
	})
	if err != nil {
		return uuid.Nil, err
	}
	return itinerary.ID, nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, id string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_days.day_number ASC")
		}).
		Preload("Days.Visits", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_visits.visit_order ASC")
		}).
		First(&itinerary, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) ListByUserID(ctx context.Context, userID string, page, pageSize int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&itineraries).Error

	if err != nil {
		return nil, err
	}
	return itineraries, nil
}
