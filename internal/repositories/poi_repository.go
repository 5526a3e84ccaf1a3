package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wayfare/internal/models/db_models"
)

type POIRepository interface {
	CreatePoi(ctx context.Context, poi *db_models.POI) (uuid.UUID, error)
	UpdatePoi(ctx context.Context, poi *db_models.POI) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.POI, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.POI, error)
	ListByDestinations(ctx context.Context, destinations []string) ([]db_models.POI, error)
	ListByTypes(ctx context.Context, types []string, limit int) ([]db_models.POI, error)

	GetActivityByID(ctx context.Context, id string) (*db_models.Activity, error)
	ListActivitiesByTypes(ctx context.Context, types []string, limit int) ([]db_models.Activity, error)
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

func (r *poiRepository) CreatePoi(ctx context.Context, poi *db_models.POI) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(poi).Error; err != nil {
		return uuid.Nil, err
	}
	return poi.ID, nil
}

func (r *poiRepository) UpdatePoi(ctx context.Context, poi *db_models.POI) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(poi)
		if result.Error != nil {
			return fmt.Errorf("failed to update POI: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *poiRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.POI{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *poiRepository) GetByID(ctx context.Context, id string) (*db_models.POI, error) {
	var poi db_models.POI
	err := r.db.WithContext(ctx).
		Preload("Activities").
		First(&poi, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &poi, nil
}

func (r *poiRepository) List(ctx context.Context, page, pageSize int) ([]db_models.POI, error) {
	var pois []db_models.POI
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Preload("Activities").
		Offset(offset).
		Limit(pageSize).
		Find(&pois).Error

	if err != nil {
		return nil, err
	}
	return pois, nil
}

// ListByDestinations matches POIs whose city or country equals any of the
// requested destinations, case-insensitively.
func (r *poiRepository) ListByDestinations(ctx context.Context, destinations []string) ([]db_models.POI, error) {
	var pois []db_models.POI

	query := r.db.WithContext(ctx).Preload("Activities")

	var conditions []string
	var args []interface{}
	for _, dest := range destinations {
		dest = strings.TrimSpace(dest)
		if dest == "" {
			continue
		}
		conditions = append(conditions, "(city ILIKE ? OR country ILIKE ?)")
		args = append(args, dest, dest)
	}
	if len(conditions) == 0 {
		return nil, nil
	}

	err := query.
		Where(strings.Join(conditions, " OR "), args...).
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}

// ListByTypes matches POIs whose category contains any of the given interest
// tags, best-rated first.
func (r *poiRepository) ListByTypes(ctx context.Context, types []string, limit int) ([]db_models.POI, error) {
	conditions, args := typeConditions("type", types)
	if len(conditions) == 0 {
		return nil, nil
	}

	var pois []db_models.POI
	err := r.db.WithContext(ctx).
		Where(strings.Join(conditions, " OR "), args...).
		Order("rating DESC NULLS LAST").
		Limit(limit).
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}

func (r *poiRepository) GetActivityByID(ctx context.Context, id string) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

// ListActivitiesByTypes matches activities by category, ordered by the
// rating of their parent POI.
func (r *poiRepository) ListActivitiesByTypes(ctx context.Context, types []string, limit int) ([]db_models.Activity, error) {
	conditions, args := typeConditions("activities.type", types)
	if len(conditions) == 0 {
		return nil, nil
	}

	var activities []db_models.Activity
	err := r.db.WithContext(ctx).
		Joins("JOIN pois ON pois.id = activities.poi_id").
		Where(strings.Join(conditions, " OR "), args...).
		Order("pois.rating DESC NULLS LAST").
		Limit(limit).
		Preload("POI").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func typeConditions(column string, types []string) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}
	for _, t := range types {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		conditions = append(conditions, column+" ILIKE ?")
		args = append(args, "%"+t+"%")
	}
	return conditions, args
}
