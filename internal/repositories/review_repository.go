package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wayfare/internal/models/db_models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *db_models.Review) (uuid.UUID, error)
	FindByUserAndTarget(ctx context.Context, userID uuid.UUID, poiID, activityID *uuid.UUID) (*db_models.Review, error)
	ListByPOI(ctx context.Context, poiID string) ([]db_models.Review, error)
	ListByActivity(ctx context.Context, activityID string) ([]db_models.Review, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *db_models.Review) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return uuid.Nil, err
	}
	return review.ID, nil
}

func (r *reviewRepository) FindByUserAndTarget(ctx context.Context, userID uuid.UUID, poiID, activityID *uuid.UUID) (*db_models.Review, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if poiID != nil {
		query = query.Where("poi_id = ?", *poiID)
	}
	if activityID != nil {
		query = query.Where("activity_id = ?", *activityID)
	}

	var review db_models.Review
	err := query.First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByPOI(ctx context.Context, poiID string) ([]db_models.Review, error) {
	return r.list(ctx, "poi_id = ?", poiID)
}

func (r *reviewRepository) ListByActivity(ctx context.Context, activityID string) ([]db_models.Review, error) {
	return r.list(ctx, "activity_id = ?", activityID)
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Review, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *reviewRepository) list(ctx context.Context, condition string, arg interface{}) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Where(condition, arg).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
