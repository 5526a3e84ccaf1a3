package controllers_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewPOIsController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewReviewsController),
	fx.Provide(controllers.NewRecommendationsController))
