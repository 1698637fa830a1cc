package request_models

type CreateTourBookingRequest struct {
	TourID         string  `json:"tourId" binding:"required,uuid"`
	StartDate      string  `json:"startDate" binding:"required"`
	NumberOfPeople int     `json:"numberOfPeople" binding:"required,gt=0"`
	TotalPrice     float64 `json:"totalPrice" binding:"required,gt=0"`
}

type CreateHotelBookingRequest struct {
	HotelID    string   `json:"hotelId" binding:"required,uuid"`
	CheckIn    string   `json:"checkIn" binding:"required"`
	CheckOut   string   `json:"checkOut" binding:"required"`
	Guests     int      `json:"guests" binding:"required,min=1"`
	TotalPrice *float64 `json:"totalPrice" binding:"required,gte=0"`
}

type CreateGroupBookingRequest struct {
	TourID              string  `json:"tourId" binding:"omitempty,uuid"`
	HotelID             string  `json:"hotelId" binding:"omitempty,uuid"`
	StartDate           string  `json:"startDate" binding:"required"`
	EndDate             string  `json:"endDate"`
	GroupSize           int     `json:"groupSize" binding:"required,min=1"`
	GroupType           string  `json:"groupType" binding:"max=64"`
	ContactPerson       string  `json:"contactPerson" binding:"max=128"`
	SpecialRequirements string  `json:"specialRequirements" binding:"max=2000"`
	PaymentOption       string  `json:"paymentOption"`
	Installments        *int    `json:"installments"`
	TotalAmount         float64 `json:"totalAmount" binding:"gte=0"`
}

// UpdateBookingRequest carries optional fields; absent fields are left untouched.
type UpdateBookingRequest struct {
	Status     *string  `json:"status"`
	PaidAmount *float64 `json:"paidAmount" binding:"omitempty,gte=0"`
}

type ListBookingsQuery struct {
	Status string `form:"status"`
}
