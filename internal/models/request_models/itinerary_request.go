package request_models

// GenerateItineraryRequest drives one scheduling run. Either the structured
// fields or a free-text Query can be supplied; insight extraction fills the
// gaps when Query is present.
type GenerateItineraryRequest struct {
	Destinations   []string `json:"destinations"`
	StartDate      string   `json:"start_date"`
	DurationDays   int      `json:"duration_days"`
	Budget         *float64 `json:"budget"`
	BudgetCurrency string   `json:"budget_currency"`
	Interests      []string `json:"interests"`
	TravelStyle    string   `json:"travel_style"`
	Query          string   `json:"query"`
}
