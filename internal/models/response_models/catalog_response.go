package response_models

import (
	"github.com/google/uuid"

	"voyago/internal/models/db_models"
)

type ImageResponse struct {
	ID      string  `json:"id"`
	URL     string  `json:"url"`
	Alt     string  `json:"alt,omitempty"`
	TourID  *string `json:"tourId,omitempty"`
	HotelID *string `json:"hotelId,omitempty"`
}

type TourResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Price       float64         `json:"price"`
	Duration    int             `json:"duration"`
	MaxPeople   int             `json:"maxPeople"`
	Featured    bool            `json:"featured"`
	Images      []ImageResponse `json:"images"`
	CreatedAt   int64           `json:"createdAt"`
	UpdatedAt   int64           `json:"updatedAt"`
}

type HotelResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Price       float64         `json:"price"`
	Rating      float64         `json:"rating"`
	Amenities   []string        `json:"amenities"`
	Featured    bool            `json:"featured"`
	Images      []ImageResponse `json:"images"`
	CreatedAt   int64           `json:"createdAt"`
	UpdatedAt   int64           `json:"updatedAt"`
}

// TourSummary is the compact shape embedded in bookings and wishlist items.
type TourSummary struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	Image    string  `json:"image,omitempty"`
}

type HotelSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Image    string  `json:"image,omitempty"`
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func NewImageResponse(img *db_models.Image) ImageResponse {
	return ImageResponse{
		ID:      img.ID.String(),
		URL:     img.URL,
		Alt:     img.Alt,
		TourID:  optionalID(img.TourID),
		HotelID: optionalID(img.HotelID),
	}
}

func NewImageResponses(images []db_models.Image) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for i := range images {
		out = append(out, NewImageResponse(&images[i]))
	}
	return out
}

func firstImageURL(images []db_models.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

func NewTourResponse(t *db_models.Tour) TourResponse {
	return TourResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Location:    t.Location,
		Price:       t.Price,
		Duration:    t.Duration,
		MaxPeople:   t.MaxPeople,
		Featured:    t.Featured,
		Images:      NewImageResponses(t.Images),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTourResponses(tours []db_models.Tour) []TourResponse {
	out := make([]TourResponse, 0, len(tours))
	for i := range tours {
		out = append(out, NewTourResponse(&tours[i]))
	}
	return out
}

func NewHotelResponse(h *db_models.Hotel) HotelResponse {
	amenities := []string(h.Amenities)
	if amenities == nil {
		amenities = []string{}
	}
	return HotelResponse{
		ID:          h.ID.String(),
		Name:        h.Name,
		Description: h.Description,
		Location:    h.Location,
		Price:       h.Price,
		Rating:      h.Rating,
		Amenities:   amenities,
		Featured:    h.Featured,
		Images:      NewImageResponses(h.Images),
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func NewHotelResponses(hotels []db_models.Hotel) []HotelResponse {
	out := make([]HotelResponse, 0, len(hotels))
	for i := range hotels {
		out = append(out, NewHotelResponse(&hotels[i]))
	}
	return out
}

func NewTourSummary(t *db_models.Tour) *TourSummary {
	if t == nil {
		return nil
	}
	return &TourSummary{
		ID:       t.ID.String(),
		Title:    t.Title,
		Location: t.Location,
		Price:    t.Price,
		Duration: t.Duration,
		Image:    firstImageURL(t.Images),
	}
}

func NewHotelSummary(h *db_models.Hotel) *HotelSummary {
	if h == nil {
		return nil
	}
	return &HotelSummary{
		ID:       h.ID.String(),
		Name:     h.Name,
		Location: h.Location,
		Price:    h.Price,
		Rating:   h.Rating,
		Image:    firstImageURL(h.Images),
	}
}
