package response_models

import "wayfare/internal/engine"

// ItineraryResponse is the generation result handed back to the client.
// Saved is false when the itinerary was generated but could not be
// persisted; the result itself is still usable.
type ItineraryResponse struct {
	ID             string            `json:"id,omitempty"`
	Destinations   []string          `json:"destinations"`
	StartDate      string            `json:"start_date"`
	DurationDays   int               `json:"duration_days"`
	Days           []engine.DayBlock `json:"days"`
	Text           string            `json:"text"`
	TotalCost      engine.Money      `json:"total_cost"`
	ConversionNote string            `json:"conversion_note,omitempty"`
	Saved          bool              `json:"saved"`
}

type ItinerarySummary struct {
	ID           string   `json:"id"`
	Destinations []string `json:"destinations"`
	StartDate    string   `json:"start_date"`
	DurationDays int      `json:"duration_days"`
	TotalCost    float64  `json:"total_cost"`
	Currency     string   `json:"currency"`
}
