package db_models

import "github.com/google/uuid"

type POI struct {
	BaseModel
	Name         string
	City         string
	Country      string
	Type         string
	Latitude     float64
	Longitude    float64
	Rating       *float64
	Cost         *float64
	CostCurrency string
	Description  string
	OpeningHours string

	Activities []Activity
}

// Activity is something to do at a location, scheduled through its parent
// POI.
type Activity struct {
	BaseModel
	POIID        uuid.UUID
	Name         string
	Type         string
	Description  string
	Cost         *float64
	CostCurrency string

	POI *POI `gorm:"foreignKey:POIID"`
}
