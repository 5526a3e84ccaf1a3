package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service-layer sentinels to HTTP responses.
// NoLocationsFound and NoSuitableCandidates stay distinct so clients can
// suggest changing the destination vs relaxing the filters; GenerationFailed
// points at the budget/time constraints instead.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request parameters")
	case errors.Is(err, ErrNoLocationsFound):
		RespondError(c, http.StatusNotFound, "Nothing found for the requested destination")
	case errors.Is(err, ErrNoSuitableCandidates):
		RespondError(c, http.StatusNotFound, "No suitable places found for this trip")
	case errors.Is(err, ErrGenerationFailed):
		RespondError(c, http.StatusUnprocessableEntity, "Could not build an itinerary within the given constraints")
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, ErrPOINotFound):
		RespondError(c, http.StatusNotFound, "POI not found")
	case errors.Is(err, ErrActivityNotFound):
		RespondError(c, http.StatusNotFound, "Activity not found")
	case errors.Is(err, ErrAlreadyReviewed):
		RespondError(c, http.StatusConflict, "You have already reviewed this item")
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrWrongCredentials):
		RespondError(c, http.StatusUnauthorized, "Wrong email or password")
	case errors.Is(err, ErrEmailTaken):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
