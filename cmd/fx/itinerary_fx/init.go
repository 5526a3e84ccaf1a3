package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfare/internal/currency"
	"wayfare/internal/engine"
	"wayfare/internal/repositories"
	"wayfare/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo, provideEngine, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideEngine(converter currency.Converter) *engine.Engine {
	return engine.New(converter)
}

func provideItineraryService(
	poiRepo repositories.POIRepository,
	itineraryRepo repositories.ItineraryRepository,
	insights services.TextInsightProvider,
	planner *engine.Engine,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(poiRepo, itineraryRepo, insights, planner)
}
