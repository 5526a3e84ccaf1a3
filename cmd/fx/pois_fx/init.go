package pois_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
)

var Module = fx.Provide(
	providePoisRepo, providePoisService)

func providePoisRepo(db *gorm.DB) repositories.POIRepository {
	return repositories.NewPOIRepository(db)
}

func providePoisService(poiRepo repositories.POIRepository) services.POIServiceInterface {
	return services.NewPOIService(poiRepo)
}
