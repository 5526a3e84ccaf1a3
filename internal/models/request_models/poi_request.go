package request_models

import "github.com/google/uuid"

type CreatePoiRequest struct {
	Name         string   `json:"name" binding:"required"`
	City         string   `json:"city" binding:"required"`
	Country      string   `json:"country"`
	Type         string   `json:"type"`
	Latitude     float64  `json:"latitude" binding:"min=-90,max=90"`
	Longitude    float64  `json:"longitude" binding:"min=-180,max=180"`
	Rating       *float64 `json:"rating"`
	Cost         *float64 `json:"cost"`
	CostCurrency string   `json:"cost_currency"`
	Description  string   `json:"description"`
	OpeningHours string   `json:"opening_hours"`
}

type UpdatePoiRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	CreatePoiRequest
}
