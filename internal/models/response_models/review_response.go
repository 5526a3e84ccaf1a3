package response_models

type ReviewResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	PoiID      string `json:"poi_id,omitempty"`
	ActivityID string `json:"activity_id,omitempty"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  int64  `json:"created_at"`
}

// RecommendedItem is one entry of a personalized recommendation list; it is
// either a POI or an activity at one.
type RecommendedItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ItemType    string   `json:"item_type"`
	Description string   `json:"description,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
}
