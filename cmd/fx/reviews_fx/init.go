package reviews_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService, provideRecommendationService)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	poiRepo repositories.POIRepository,
	accountRepo repositories.AccountRepository,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, poiRepo, accountRepo)
}

func provideRecommendationService(
	poiRepo repositories.POIRepository,
	accountRepo repositories.AccountRepository,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(poiRepo, accountRepo)
}
