package response_models

import (
	"time"

	"voyago/internal/models/db_models"
)

type PaymentPlanResponse struct {
	ID                string  `json:"id"`
	BookingID         string  `json:"bookingId"`
	TotalAmount       float64 `json:"totalAmount"`
	Installments      int     `json:"installments"`
	PaidInstallments  int     `json:"paidInstallments"`
	Remaining         int     `json:"remainingInstallments"`
	InstallmentAmount float64 `json:"installmentAmount"`
	NextDueDate       string  `json:"nextDueDate"`
	Status            string  `json:"status"`
}

type BookingResponse struct {
	ID              string               `json:"id"`
	UserID          string               `json:"userId"`
	TourID          *string              `json:"tourId,omitempty"`
	HotelID         *string              `json:"hotelId,omitempty"`
	StartDate       string               `json:"startDate"`
	EndDate         *string              `json:"endDate,omitempty"`
	NumberOfGuests  int                  `json:"numberOfGuests"`
	Status          string               `json:"status"`
	TotalAmount     float64              `json:"totalAmount"`
	PaidAmount      float64              `json:"paidAmount"`
	GroupBooking    bool                 `json:"groupBooking"`
	GroupSize       *int                 `json:"groupSize,omitempty"`
	GroupType       string               `json:"groupType,omitempty"`
	ContactPerson   string               `json:"contactPerson,omitempty"`
	SpecialRequests string               `json:"specialRequests,omitempty"`
	Tour            *TourSummary         `json:"tour,omitempty"`
	Hotel           *HotelSummary        `json:"hotel,omitempty"`
	PaymentPlan     *PaymentPlanResponse `json:"paymentPlan,omitempty"`
	CreatedAt       int64                `json:"createdAt"`
	UpdatedAt       int64                `json:"updatedAt"`
}

func NewPaymentPlanResponse(p *db_models.PaymentPlan) *PaymentPlanResponse {
	if p == nil {
		return nil
	}
	return &PaymentPlanResponse{
		ID:                p.ID.String(),
		BookingID:         p.BookingID.String(),
		TotalAmount:       p.TotalAmount,
		Installments:      p.Installments,
		PaidInstallments:  p.PaidInstallments,
		Remaining:         p.RemainingInstallments(),
		InstallmentAmount: p.InstallmentAmount(),
		NextDueDate:       p.NextDueDate.UTC().Format(time.RFC3339),
		Status:            string(p.Status),
	}
}

func NewBookingResponse(b *db_models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID.String(),
		UserID:          b.UserID.String(),
		TourID:          optionalID(b.TourID),
		HotelID:         optionalID(b.HotelID),
		StartDate:       b.StartDate.UTC().Format(time.RFC3339),
		NumberOfGuests:  b.NumberOfGuests,
		Status:          string(b.Status),
		TotalAmount:     b.TotalAmount,
		PaidAmount:      b.PaidAmount,
		GroupBooking:    b.GroupBooking,
		GroupSize:       b.GroupSize,
		GroupType:       b.GroupType,
		ContactPerson:   b.ContactPerson,
		SpecialRequests: b.SpecialRequests,
		Tour:            NewTourSummary(b.Tour),
		Hotel:           NewHotelSummary(b.Hotel),
		PaymentPlan:     NewPaymentPlanResponse(b.PaymentPlan),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.EndDate != nil {
		end := b.EndDate.UTC().Format(time.RFC3339)
		resp.EndDate = &end
	}
	return resp
}

func NewBookingResponses(bookings []db_models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewBookingResponse(&bookings[i]))
	}
	return out
}

type MarkOverdueResponse struct {
	Defaulted int64 `json:"defaulted"`
}
