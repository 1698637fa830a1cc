package db_models

type Testimonial struct {
	BaseModel
	Name    string `gorm:"not null"`
	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment string `gorm:"type:text;not null"`
}

type ContactMessage struct {
	BaseModel
	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Subject string `gorm:"not null"`
	Message string `gorm:"type:text;not null"`
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserPreferences{},
		&Tour{},
		&Hotel{},
		&Image{},
		&Booking{},
		&PaymentPlan{},
		&Review{},
		&WishlistItem{},
		&Testimonial{},
		&ContactMessage{},
	}
}
