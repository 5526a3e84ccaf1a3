package db_models

import "github.com/google/uuid"

// Review targets exactly one of a POI or an activity. One review per user
// per target.
type Review struct {
	BaseModel
	UserID     uuid.UUID  `gorm:"index"`
	POIID      *uuid.UUID `gorm:"index"`
	ActivityID *uuid.UUID `gorm:"index"`
	Rating     int
	Comment    string
}
