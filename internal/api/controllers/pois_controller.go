package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type POIsController struct {
	poiService services.POIServiceInterface
}

func NewPOIsController(poiService services.POIServiceInterface) *POIsController {
	return &POIsController{
		poiService: poiService,
	}
}

func (p *POIsController) GetPoiById(c *gin.Context) {
	poiID := c.Param("id")
	if poiID == "" {
		utils.RespondError(c, http.StatusBadRequest, "POI ID is required")
		return
	}

	poi, err := p.poiService.GetPOIById(c.Request.Context(), poiID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "POI fetched successfully")
}

// SearchPois matches POIs against comma-separated destination names.
func (p *POIsController) SearchPois(c *gin.Context) {
	destinationParam := c.Query("destination")
	if destinationParam == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination query parameter is required")
		return
	}

	destinations := strings.Split(destinationParam, ",")

	pois, err := p.poiService.SearchByDestination(c.Request.Context(), destinations)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pois, "POIs fetched successfully")
}

func (p *POIsController) ListPois(c *gin.Context) {
	page, pageSize, ok := paginationParams(c)
	if !ok {
		return
	}

	pois, err := p.poiService.ListPois(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pois, "POIs fetched successfully")
}

func (p *POIsController) CreatePoi(c *gin.Context) {
	var req request_models.CreatePoiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid POI payload")
		return
	}

	if err := p.poiService.CreatePoi(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "POI created successfully")
}

func (p *POIsController) UpdatePoi(c *gin.Context) {
	var req request_models.UpdatePoiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid POI payload")
		return
	}

	if err := p.poiService.UpdatePoi(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "POI updated successfully")
}

func (p *POIsController) DeletePoi(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid POI ID")
		return
	}

	if err := p.poiService.DeletePoi(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "POI deleted successfully")
}
