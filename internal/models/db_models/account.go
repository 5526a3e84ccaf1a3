package db_models

import "github.com/lib/pq"

type Account struct {
	BaseModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	DisplayName  string

	// Interest tags drive personalized recommendations.
	Interests pq.StringArray `gorm:"type:text[]"`
}
