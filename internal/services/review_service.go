package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, userID string, req request_models.CreateReviewRequest) (response_models.ReviewResponse, error)
	ListForPOI(ctx context.Context, poiID string) ([]response_models.ReviewResponse, error)
	ListForActivity(ctx context.Context, activityID string) ([]response_models.ReviewResponse, error)
	ListForUser(ctx context.Context, userID string) ([]response_models.ReviewResponse, error)
}

type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	poiRepo     repositories.POIRepository
	accountRepo repositories.AccountRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	poiRepo repositories.POIRepository,
	accountRepo repositories.AccountRepository,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		poiRepo:     poiRepo,
		accountRepo: accountRepo,
	}
}

// CreateReview records one review per user per target. The target is exactly
// one of a POI or an activity.
func (s *ReviewService) CreateReview(ctx context.Context, userID string, req request_models.CreateReviewRequest) (response_models.ReviewResponse, error) {
	reviewer, err := uuid.Parse(userID)
	if err != nil {
		return response_models.ReviewResponse{}, utils.ErrInvalidInput
	}
	if (req.PoiID == nil) == (req.ActivityID == nil) {
		return response_models.ReviewResponse{}, utils.ErrInvalidInput
	}

	if req.PoiID != nil {
		poi, err := s.poiRepo.GetByID(ctx, req.PoiID.String())
		if err != nil {
			log.Printf("Error fetching POI: %v", err)
			return response_models.ReviewResponse{}, utils.ErrDatabaseError
		}
		if poi == nil {
			return response_models.ReviewResponse{}, utils.ErrPOINotFound
		}
	} else {
		activity, err := s.poiRepo.GetActivityByID(ctx, req.ActivityID.String())
		if err != nil {
			log.Printf("Error fetching activity: %v", err)
			return response_models.ReviewResponse{}, utils.ErrDatabaseError
		}
		if activity == nil {
			return response_models.ReviewResponse{}, utils.ErrActivityNotFound
		}
	}

	existing, err := s.reviewRepo.FindByUserAndTarget(ctx, reviewer, req.PoiID, req.ActivityID)
	if err != nil {
		log.Printf("Error checking existing review: %v", err)
		return response_models.ReviewResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.ReviewResponse{}, utils.ErrAlreadyReviewed
	}

	review := &db_models.Review{
		UserID:     reviewer,
		POIID:      req.PoiID,
		ActivityID: req.ActivityID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if _, err := s.reviewRepo.Create(ctx, review); err != nil {
		log.Printf("Error creating review: %v", err)
		return response_models.ReviewResponse{}, utils.ErrDatabaseError
	}

	return toReviewResponse(*review), nil
}

func (s *ReviewService) ListForPOI(ctx context.Context, poiID string) ([]response_models.ReviewResponse, error) {
	poi, err := s.poiRepo.GetByID(ctx, poiID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if poi == nil {
		return nil, utils.ErrPOINotFound
	}

	reviews, err := s.reviewRepo.ListByPOI(ctx, poiID)
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return toReviewResponses(reviews), nil
}

func (s *ReviewService) ListForActivity(ctx context.Context, activityID string) ([]response_models.ReviewResponse, error) {
	activity, err := s.poiRepo.GetActivityByID(ctx, activityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	reviews, err := s.reviewRepo.ListByActivity(ctx, activityID)
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return toReviewResponses(reviews), nil
}

func (s *ReviewService) ListForUser(ctx context.Context, userID string) ([]response_models.ReviewResponse, error) {
	account, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	reviews, err := s.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return toReviewResponses(reviews), nil
}

func toReviewResponse(review db_models.Review) response_models.ReviewResponse {
	out := response_models.ReviewResponse{
		ID:        review.ID.String(),
		UserID:    review.UserID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
	if review.POIID != nil {
		out.PoiID = review.POIID.String()
	}
	if review.ActivityID != nil {
		out.ActivityID = review.ActivityID.String()
	}
	return out
}

func toReviewResponses(reviews []db_models.Review) []response_models.ReviewResponse {
	out := make([]response_models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}
	return out
}
