package request_models

import "github.com/google/uuid"

// CreateReviewRequest targets exactly one of PoiID or ActivityID.
type CreateReviewRequest struct {
	PoiID      *uuid.UUID `json:"poi_id"`
	ActivityID *uuid.UUID `json:"activity_id"`
	Rating     int        `json:"rating" binding:"required,min=1,max=5"`
	Comment    string     `json:"comment"`
}
