package infra

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

type seedUser struct {
	Email    string
	Name     string
	Password string
	Role     db_models.Role
}

var defaultUsers = []seedUser{
	{"admin@example.com", "Admin User", "admin123", db_models.RoleAdmin},
	{"manager@example.com", "Tour Manager", "manager123", db_models.RoleManager},
	{"guide@example.com", "Tour Guide", "guide123", db_models.RoleGuide},
	{"user@example.com", "Regular User", "user123", db_models.RoleUser},
	{"test@example.com", "Test User", "test123", db_models.RoleUser},
}

var seedLocations = []string{
	"Paris, France", "Tokyo, Japan", "New York, USA", "Rome, Italy", "Cairo, Egypt",
	"Sydney, Australia", "London, UK", "Barcelona, Spain", "Dubai, UAE", "Bali, Indonesia",
}

var seedTourThemes = []string{
	"Cultural Heritage Tour", "Adventure Expedition", "City Discovery",
	"Historical Journey", "Nature Explorer", "Urban Adventure",
}

var seedAmenities = [][]string{
	{"WiFi", "Pool", "Spa"},
	{"WiFi", "Gym", "Restaurant"},
	{"WiFi", "Breakfast", "Parking"},
	{"Pool", "Beach Access", "Bar"},
}

var seedTestimonials = []db_models.Testimonial{
	{Name: "Amelia Hart", Rating: 5, Comment: "Every detail of the Kyoto tour was handled. We just showed up and enjoyed it."},
	{Name: "Lucas Moreau", Rating: 4, Comment: "Great guides and fair prices. The installment plan made the group trip possible."},
	{Name: "Priya Nair", Rating: 5, Comment: "Booked a hotel and a tour in one evening. Support answered within the hour."},
	{Name: "Diego Alvarez", Rating: 4, Comment: "Small groups, good pacing, and the hotel picks were spot on."},
}

type SeedResult struct {
	Users        int
	Tours        int
	Hotels       int
	Testimonials int
}

// Seed inserts the default accounts (one per role, each with preferences) and,
// when the catalog is empty, a sample set of tours, hotels and testimonials.
// Existing accounts are left untouched so the command can be rerun.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) (SeedResult, error) {
	var res SeedResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range defaultUsers {
			created, err := seedAccount(tx, u)
			if err != nil {
				return err
			}
			if created {
				res.Users++
			}
		}

		var tours int64
		if err := tx.Model(&db_models.Tour{}).Count(&tours).Error; err != nil {
			return err
		}
		if tours > 0 {
			log.Info("catalog already seeded, skipping", zap.Int64("tours", tours))
			return nil
		}

		for i := 0; i < 12; i++ {
			loc := seedLocations[i%len(seedLocations)]
			tour := db_models.Tour{
				Title:       fmt.Sprintf("%s in %s", seedTourThemes[i%len(seedTourThemes)], loc),
				Description: fmt.Sprintf("A guided %d-day trip around %s with local experts, curated stays and small groups.", 3+i%10, loc),
				Location:    loc,
				Price:       float64(800 + 250*i),
				Duration:    3 + i%10,
				MaxPeople:   10 + (i*3)%20,
				Featured:    i%4 == 0,
			}
			if err := tx.Create(&tour).Error; err != nil {
				return err
			}
			for j := 0; j < 3; j++ {
				tourID := tour.ID
				img := db_models.Image{
					URL:    fmt.Sprintf("https://picsum.photos/seed/tour-%d-%d/1200/800", i, j),
					Alt:    tour.Title,
					TourID: &tourID,
				}
				if err := tx.Create(&img).Error; err != nil {
					return err
				}
			}
			res.Tours++
		}

		for i := 0; i < 8; i++ {
			loc := seedLocations[(i+3)%len(seedLocations)]
			hotel := db_models.Hotel{
				Name:        fmt.Sprintf("Grand Stay %s", loc),
				Description: fmt.Sprintf("Comfortable rooms in central %s, close to transport and the old town.", loc),
				Location:    loc,
				Price:       float64(90 + 35*i),
				Rating:      3.5 + float64(i%4)*0.5,
				Amenities:   datatypes.JSONSlice[string](seedAmenities[i%len(seedAmenities)]),
				Featured:    i%3 == 0,
			}
			if err := tx.Create(&hotel).Error; err != nil {
				return err
			}
			hotelID := hotel.ID
			img := db_models.Image{
				URL:     fmt.Sprintf("https://picsum.photos/seed/hotel-%d/1200/800", i),
				Alt:     hotel.Name,
				HotelID: &hotelID,
			}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
			res.Hotels++
		}

		for _, t := range seedTestimonials {
			t := t
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
			res.Testimonials++
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed: %w", err)
	}
	log.Info("seed complete",
		zap.Int("users", res.Users),
		zap.Int("tours", res.Tours),
		zap.Int("hotels", res.Hotels),
		zap.Int("testimonials", res.Testimonials))
	return res, nil
}

func seedAccount(tx *gorm.DB, u seedUser) (bool, error) {
	var existing db_models.User
	err := tx.Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := utils.HashPassword(u.Password)
	if err != nil {
		return false, err
	}
	user := db_models.User{
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: hash,
		Role:         u.Role,
		Image:        "https://api.dicebear.com/7.x/avataaars/svg?seed=" + string(u.Role),
	}
	if err := tx.Create(&user).Error; err != nil {
		return false, err
	}
	prefs := db_models.UserPreferences{
		UserID:                user.ID,
		PreferredDestinations: datatypes.JSONSlice[string]{"Paris, France", "Tokyo, Japan", "New York, USA"},
		DietaryRestrictions:   datatypes.JSONSlice[string]{"None"},
		AccommodationType:     datatypes.JSONSlice[string]{"Hotel", "Resort"},
		TravelStyle:           datatypes.JSONSlice[string]{"Luxury", "Cultural"},
		BudgetRange:           "$1000-$2000",
	}
	return true, tx.Create(&prefs).Error
}
