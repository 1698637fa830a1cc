package db_models

import "gorm.io/datatypes"

type Hotel struct {
	BaseModel
	Name        string  `gorm:"not null"`
	Description string  `gorm:"type:text;not null"`
	Location    string  `gorm:"not null;index"`
	Price       float64 `gorm:"not null"` // per night
	Rating      float64 `gorm:"not null;default:0"`
	Amenities   datatypes.JSONSlice[string]
	Featured    bool `gorm:"default:false;index"`

	Images   []Image `gorm:"foreignKey:HotelID"`
	Bookings []Booking
}
