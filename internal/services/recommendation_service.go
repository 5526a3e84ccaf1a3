package services

import (
	"context"
	"fmt"
	"log"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

const maxRecommendations = 15

type RecommendationServiceInterface interface {
	Personalized(ctx context.Context, userID string) ([]response_models.RecommendedItem, error)
}

type RecommendationService struct {
	poiRepo     repositories.POIRepository
	accountRepo repositories.AccountRepository
}

func NewRecommendationService(
	poiRepo repositories.POIRepository,
	accountRepo repositories.AccountRepository,
) RecommendationServiceInterface {
	return &RecommendationService{
		poiRepo:     poiRepo,
		accountRepo: accountRepo,
	}
}

// Personalized ranks POIs matching the account's interest tags, best-rated
// first, and tops the list up with matching activities. An activity is
// skipped when its parent POI is already recommended.
func (s *RecommendationService) Personalized(ctx context.Context, userID string) ([]response_models.RecommendedItem, error) {
	account, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		log.Printf("Error fetching account: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if len(account.Interests) == 0 {
		return []response_models.RecommendedItem{}, nil
	}

	pois, err := s.poiRepo.ListByTypes(ctx, account.Interests, maxRecommendations)
	if err != nil {
		log.Printf("Error listing POIs by type: %v", err)
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.RecommendedItem, 0, maxRecommendations)
	recommendedPOIs := make(map[string]bool, len(pois))
	for _, poi := range pois {
		recommendedPOIs[poi.ID.String()] = true
		items = append(items, response_models.RecommendedItem{
			ID:          poi.ID.String(),
			Name:        poi.Name,
			ItemType:    "poi",
			Description: poi.Description,
			Rating:      poi.Rating,
			City:        poi.City,
			Country:     poi.Country,
		})
	}

	if len(items) >= maxRecommendations {
		return items[:maxRecommendations], nil
	}

	// Over-fetch: some activities are dropped by the parent-POI dedup.
	fetchLimit := (maxRecommendations-len(items))*2 + 5
	activities, err := s.poiRepo.ListActivitiesByTypes(ctx, account.Interests, fetchLimit)
	if err != nil {
		log.Printf("Error listing activities by type: %v", err)
		return nil, utils.ErrDatabaseError
	}

	for _, activity := range activities {
		if len(items) >= maxRecommendations {
			break
		}
		if recommendedPOIs[activity.POIID.String()] {
			continue
		}
		items = append(items, toRecommendedActivity(activity))
	}

	return items, nil
}

func toRecommendedActivity(activity db_models.Activity) response_models.RecommendedItem {
	item := response_models.RecommendedItem{
		ID:          activity.ID.String(),
		Name:        activity.Name,
		ItemType:    "activity",
		Description: activity.Description,
	}
	if activity.POI != nil {
		item.Name = fmt.Sprintf("%s (at %s)", activity.Name, activity.POI.Name)
		item.Rating = activity.POI.Rating
		item.City = activity.POI.City
		item.Country = activity.POI.Country
	}
	return item
}
