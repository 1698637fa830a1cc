package db_models

import "github.com/google/uuid"

// Image belongs to exactly one of a tour or a hotel.
type Image struct {
	BaseModel
	URL     string `gorm:"not null"`
	Alt     string
	TourID  *uuid.UUID `gorm:"type:uuid;index"`
	HotelID *uuid.UUID `gorm:"type:uuid;index"`
}
