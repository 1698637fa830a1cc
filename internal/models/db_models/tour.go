package db_models

type Tour struct {
	BaseModel
	Title       string  `gorm:"not null"`
	Description string  `gorm:"type:text;not null"`
	Location    string  `gorm:"not null;index"`
	Price       float64 `gorm:"not null"`
	Duration    int     `gorm:"not null"`
	MaxPeople   int     `gorm:"not null"`
	Featured    bool    `gorm:"default:false;index"`

	Images   []Image  `gorm:"foreignKey:TourID"`
	Reviews  []Review `gorm:"foreignKey:TourID"`
	Bookings []Booking
}
