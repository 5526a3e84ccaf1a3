package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Itinerary struct {
	BaseModel
	UserID            uuid.UUID
	Destinations      pq.StringArray `gorm:"type:text[]"`
	Interests         pq.StringArray `gorm:"type:text[]"`
	TravelStyle       string
	StartDate         time.Time
	EndDate           time.Time
	DurationDays      int
	TotalCost         float64
	TotalCostCurrency string
	RenderedText      string

	Days []ItineraryDay
}

type ItineraryDay struct {
	BaseModel
	ItineraryID uuid.UUID
	DayNumber   int
	Date        time.Time
	IsFree      bool

	Visits []ItineraryVisit
}

type ItineraryVisit struct {
	BaseModel
	ItineraryDayID uuid.UUID
	POIID          uuid.UUID
	VisitOrder     int
	ArrivalTime    string
	POIName        string
	ActivityName   string
}
