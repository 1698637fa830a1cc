package db_models

import "github.com/google/uuid"

type WishlistItem struct {
	BaseModel
	UserID  uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_wishlist_user_tour;uniqueIndex:idx_wishlist_user_hotel"`
	TourID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_wishlist_user_tour"`
	HotelID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_wishlist_user_hotel"`

	Tour  *Tour  `gorm:"foreignKey:TourID"`
	Hotel *Hotel `gorm:"foreignKey:HotelID"`
}
