package mq

type BookingEvent struct {
	BookingID   string  `json:"bookingId"`
	UserID      string  `json:"userId"`
	TourID      string  `json:"tourId,omitempty"`
	HotelID     string  `json:"hotelId,omitempty"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"totalAmount"`
	PaidAmount  float64 `json:"paidAmount"`
	Group       bool    `json:"group"`
	OccurredAt  int64   `json:"occurredAt"`
}

type PaymentPlanEvent struct {
	PlanID           string `json:"planId"`
	BookingID        string `json:"bookingId"`
	PaidInstallments int    `json:"paidInstallments"`
	Installments     int    `json:"installments"`
	Status           string `json:"status"`
	OccurredAt       int64  `json:"occurredAt"`
}

type ContactEvent struct {
	MessageID  string `json:"messageId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	OccurredAt int64  `json:"occurredAt"`
}
