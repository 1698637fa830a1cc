package request_models

type WishlistRequest struct {
	TourID  string `json:"tourId" binding:"omitempty,uuid"`
	HotelID string `json:"hotelId" binding:"omitempty,uuid"`
}

type PreferencesRequest struct {
	PreferredDestinations []string `json:"preferredDestinations"`
	DietaryRestrictions   []string `json:"dietaryRestrictions"`
	AccommodationType     []string `json:"accommodationType"`
	BudgetRange           string   `json:"budgetRange"`
	TravelStyle           []string `json:"travelStyle"`
}

// PreferencesPatch leaves nil fields untouched.
type PreferencesPatch struct {
	PreferredDestinations *[]string `json:"preferredDestinations"`
	DietaryRestrictions   *[]string `json:"dietaryRestrictions"`
	AccommodationType     *[]string `json:"accommodationType"`
	BudgetRange           *string   `json:"budgetRange"`
	TravelStyle           *[]string `json:"travelStyle"`
}

type CreateReviewRequest struct {
	TourID  string `json:"tourId" binding:"required,uuid"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,min=1"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=1"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=1"`
	Message string `json:"message" binding:"required,min=10"`
}
