package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_tour"`
	TourID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_tour;index"`
	Rating  int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment string    `gorm:"type:text;not null"`

	User *User `gorm:"foreignKey:UserID"`
}
