package response_models

type POI struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	Type         string   `json:"type"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Rating       *float64 `json:"rating,omitempty"`
	Cost         *float64 `json:"cost,omitempty"`
	CostCurrency string   `json:"cost_currency,omitempty"`
	Description  string   `json:"description,omitempty"`
	OpeningHours string   `json:"opening_hours,omitempty"`
}
