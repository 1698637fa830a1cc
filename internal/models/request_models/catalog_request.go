package request_models

type TourRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Duration    int      `json:"duration" binding:"required,min=1"`
	MaxPeople   int      `json:"maxPeople" binding:"required,min=1"`
	Location    string   `json:"location" binding:"required"`
	Featured    bool     `json:"featured"`
}

type HotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Rating      *float64 `json:"rating" binding:"required,gte=0,lte=5"`
	Amenities   []string `json:"amenities" binding:"required"`
	Featured    bool     `json:"featured"`
}

type SearchQuery struct {
	Query    string  `form:"query"`
	Location string  `form:"location"`
	MinPrice float64 `form:"minPrice"`
	MaxPrice float64 `form:"maxPrice"`
}
