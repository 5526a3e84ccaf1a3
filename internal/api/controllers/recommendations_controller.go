package controllers

import (
	"github.com/gin-gonic/gin"

	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type RecommendationsController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationsController(recommendationService services.RecommendationServiceInterface) *RecommendationsController {
	return &RecommendationsController{
		recommendationService: recommendationService,
	}
}

// Personalized godoc
// @Summary Personalized POI and activity recommendations
// @Description Ranked by rating across the authenticated user's interest tags
// @Tags Recommendations
// @Produce json
// @Success 200 {array} response_models.RecommendedItem
// @Security BearerAuth
// @Router /recommendations/personalized [get]
func (r *RecommendationsController) Personalized(c *gin.Context) {
	userID := c.GetString("user_id")

	items, err := r.recommendationService.Personalized(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Recommendations fetched successfully")
}
