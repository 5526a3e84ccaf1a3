package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type ReviewsController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewsController(reviewService services.ReviewServiceInterface) *ReviewsController {
	return &ReviewsController{
		reviewService: reviewService,
	}
}

// CreateReview godoc
// @Summary Review a POI or an activity
// @Description One review per user per target; exactly one of poi_id or activity_id must be set
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 200 {object} response_models.ReviewResponse
// @Security BearerAuth
// @Router /reviews [post]
func (r *ReviewsController) CreateReview(c *gin.Context) {
	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A rating of 1-5 and a poi_id or activity_id are required")
		return
	}

	userID := c.GetString("user_id")

	review, err := r.reviewService.CreateReview(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review created successfully")
}

func (r *ReviewsController) ListByPoi(c *gin.Context) {
	poiID := c.Param("poiId")
	if poiID == "" {
		utils.RespondError(c, http.StatusBadRequest, "POI ID is required")
		return
	}

	reviews, err := r.reviewService.ListForPOI(c.Request.Context(), poiID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

func (r *ReviewsController) ListByActivity(c *gin.Context) {
	activityID := c.Param("activityId")
	if activityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID is required")
		return
	}

	reviews, err := r.reviewService.ListForActivity(c.Request.Context(), activityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

func (r *ReviewsController) ListByUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	reviews, err := r.reviewService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}
