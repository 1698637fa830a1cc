package db_models

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleGuide   Role = "GUIDE"
	RoleUser    Role = "USER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleGuide, RoleUser:
		return true
	}
	return false
}

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Image        string
	Role         Role `gorm:"type:varchar(16);not null;default:'USER';index"`

	Preferences   *UserPreferences
	Bookings      []Booking
	WishlistItems []WishlistItem
	Reviews       []Review
}
