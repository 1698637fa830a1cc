package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserPreferences struct {
	BaseModel
	UserID                uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PreferredDestinations datatypes.JSONSlice[string]
	DietaryRestrictions   datatypes.JSONSlice[string]
	AccommodationType     datatypes.JSONSlice[string]
	TravelStyle           datatypes.JSONSlice[string]
	BudgetRange           string
}
