package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a multi-day itinerary
// @Description Build a day-by-day schedule from candidate POIs under budget and time constraints
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters or free-text query"
// @Success 200 {object} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := c.GetString("user_id")

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// GetItineraryById godoc
// @Summary Get itinerary by ID
// @Tags Itinerary
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} db_models.Itinerary
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [get]
func (i *ItineraryController) GetItineraryById(c *gin.Context) {
	itineraryID := c.Param("itineraryId")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	itinerary, err := i.itineraryService.GetItineraryByID(c.Request.Context(), itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// ListItineraries godoc
// @Summary List itineraries for the authenticated user
// @Tags Itinerary
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(5) minimum(1) maximum(100)
// @Success 200 {array} response_models.ItinerarySummary
// @Security BearerAuth
// @Router /itineraries [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	page, pageSize, ok := paginationParams(c)
	if !ok {
		return
	}

	userID := c.GetString("user_id")

	itineraries, err := i.itineraryService.ListItinerariesByUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

func paginationParams(c *gin.Context) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "5")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}

	return page, pageSize, true
}
