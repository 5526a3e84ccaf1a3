package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wayfare/cmd/fx/account_fx"
	"wayfare/cmd/fx/controllers_fx"
	"wayfare/cmd/fx/currency_fx"
	"wayfare/cmd/fx/db_fx"
	"wayfare/cmd/fx/insight_fx"
	"wayfare/cmd/fx/itinerary_fx"
	"wayfare/cmd/fx/pois_fx"
	"wayfare/cmd/fx/reviews_fx"
	"wayfare/internal/api/controllers"
	"wayfare/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		currency_fx.Module,
		insight_fx.Module,
		pois_fx.Module,
		itinerary_fx.Module,
		account_fx.Module,
		reviews_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	poisController *controllers.POIsController,
	accountController *controllers.AccountController,
	reviewsController *controllers.ReviewsController,
	recommendationsController *controllers.RecommendationsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, poisController, accountController,
		reviewsController, recommendationsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	poisController *controllers.POIsController,
	accountController *controllers.AccountController,
	reviewsController *controllers.ReviewsController,
	recommendationsController *controllers.RecommendationsController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	poisGroup := r.Group("/pois")
	poisGroup.GET("/search", poisController.SearchPois)
	poisGroup.GET("/:id", poisController.GetPoiById)
	poisGroup.GET("", poisController.ListPois)
	poisGroup.POST("", poisController.CreatePoi)
	poisGroup.PUT("", poisController.UpdatePoi)
	poisGroup.DELETE("/:id", poisController.DeletePoi)

	reviewsGroup := r.Group("/reviews")
	reviewsGroup.GET("/poi/:poiId", reviewsController.ListByPoi)
	reviewsGroup.GET("/activity/:activityId", reviewsController.ListByActivity)
	reviewsGroup.GET("/user/:userId", reviewsController.ListByUser)
	reviewsGroup.POST("", middleware.JWTAuthMiddleware(), reviewsController.CreateReview)

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.Use(middleware.JWTAuthMiddleware())
	itineraryGroup.POST("/generate", itineraryController.GenerateItinerary)
	itineraryGroup.GET("/:itineraryId", itineraryController.GetItineraryById)
	itineraryGroup.GET("", itineraryController.ListItineraries)

	recommendationsGroup := r.Group("/recommendations")
	recommendationsGroup.Use(middleware.JWTAuthMiddleware())
	recommendationsGroup.GET("/personalized", recommendationsController.Personalized)
}
