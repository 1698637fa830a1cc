package response_models

import "voyago/internal/models/db_models"

type WishlistItemResponse struct {
	ID        string        `json:"id"`
	TourID    *string       `json:"tourId,omitempty"`
	HotelID   *string       `json:"hotelId,omitempty"`
	Tour      *TourSummary  `json:"tour,omitempty"`
	Hotel     *HotelSummary `json:"hotel,omitempty"`
	CreatedAt int64         `json:"createdAt"`
}

type PreferencesResponse struct {
	ID                    string   `json:"id"`
	UserID                string   `json:"userId"`
	PreferredDestinations []string `json:"preferredDestinations"`
	DietaryRestrictions   []string `json:"dietaryRestrictions"`
	AccommodationType     []string `json:"accommodationType"`
	TravelStyle           []string `json:"travelStyle"`
	BudgetRange           string   `json:"budgetRange"`
	UpdatedAt             int64    `json:"updatedAt"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	TourID    string `json:"tourId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"createdAt"`
}

type TestimonialResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ContactResponse struct {
	ID string `json:"id"`
}

func NewWishlistItemResponses(items []db_models.WishlistItem) []WishlistItemResponse {
	out := make([]WishlistItemResponse, 0, len(items))
	for i := range items {
		it := &items[i]
		out = append(out, WishlistItemResponse{
			ID:        it.ID.String(),
			TourID:    optionalID(it.TourID),
			HotelID:   optionalID(it.HotelID),
			Tour:      NewTourSummary(it.Tour),
			Hotel:     NewHotelSummary(it.Hotel),
			CreatedAt: it.CreatedAt,
		})
	}
	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func NewPreferencesResponse(p *db_models.UserPreferences) *PreferencesResponse {
	if p == nil {
		return nil
	}
	return &PreferencesResponse{
		ID:                    p.ID.String(),
		UserID:                p.UserID.String(),
		PreferredDestinations: orEmpty(p.PreferredDestinations),
		DietaryRestrictions:   orEmpty(p.DietaryRestrictions),
		AccommodationType:     orEmpty(p.AccommodationType),
		TravelStyle:           orEmpty(p.TravelStyle),
		BudgetRange:           p.BudgetRange,
		UpdatedAt:             p.UpdatedAt,
	}
}

func NewReviewResponses(reviews []db_models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		r := &reviews[i]
		resp := ReviewResponse{
			ID:        r.ID.String(),
			TourID:    r.TourID.String(),
			UserID:    r.UserID.String(),
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
		if r.User != nil {
			resp.UserName = r.User.Name
		}
		out = append(out, resp)
	}
	return out
}

func NewTestimonialResponses(items []db_models.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(items))
	for _, t := range items {
		out = append(out, TestimonialResponse{
			ID:      t.ID.String(),
			Name:    t.Name,
			Rating:  t.Rating,
			Comment: t.Comment,
		})
	}
	return out
}
