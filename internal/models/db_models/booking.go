package db_models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// bookingTransitions lists the states reachable from each state. Confirmed and
// cancelled bookings are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: nil,
	BookingCancelled: nil,
}

// ParseBookingStatus normalizes case; ok is false for unknown values.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	st := BookingStatus(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := bookingTransitions[st]
	return st, ok
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

type Booking struct {
	BaseModel
	UserID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	TourID  *uuid.UUID `gorm:"type:uuid;index"`
	HotelID *uuid.UUID `gorm:"type:uuid;index"`

	StartDate      time.Time `gorm:"not null"`
	EndDate        *time.Time
	NumberOfGuests int           `gorm:"not null"`
	Status         BookingStatus `gorm:"type:varchar(16);not null;default:'PENDING';index"`
	TotalAmount    float64       `gorm:"not null"`
	PaidAmount     float64       `gorm:"not null;default:0"`

	GroupBooking    bool `gorm:"default:false;index"`
	GroupSize       *int
	GroupType       string
	ContactPerson   string
	SpecialRequests string `gorm:"type:text"`

	User        *User        `gorm:"foreignKey:UserID"`
	Tour        *Tour        `gorm:"foreignKey:TourID"`
	Hotel       *Hotel       `gorm:"foreignKey:HotelID"`
	PaymentPlan *PaymentPlan `gorm:"foreignKey:BookingID"`
}

func (b *Booking) IsTourBooking() bool  { return b.TourID != nil }
func (b *Booking) IsHotelBooking() bool { return b.HotelID != nil }
