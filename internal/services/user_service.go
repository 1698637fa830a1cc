package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type WishlistService interface {
	List(ctx context.Context, caller utils.Identity) ([]db_models.WishlistItem, error)
	Add(ctx context.Context, caller utils.Identity, req request_models.WishlistRequest) (*db_models.WishlistItem, error)
	Remove(ctx context.Context, caller utils.Identity, id string) error
}

type PreferencesService interface {
	Get(ctx context.Context, caller utils.Identity) (*db_models.UserPreferences, error)
	Upsert(ctx context.Context, caller utils.Identity, req request_models.PreferencesRequest) (*db_models.UserPreferences, error)
	Patch(ctx context.Context, caller utils.Identity, req request_models.PreferencesPatch) (*db_models.UserPreferences, error)
}

type wishlistService struct {
	wishlist repositories.WishlistRepository
	tours    repositories.TourRepository
	hotels   repositories.HotelRepository
}

func NewWishlistService(wishlist repositories.WishlistRepository, tours repositories.TourRepository, hotels repositories.HotelRepository) WishlistService {
	return &wishlistService{wishlist: wishlist, tours: tours, hotels: hotels}
}

func (s *wishlistService) List(ctx context.Context, caller utils.Identity) ([]db_models.WishlistItem, error) {
	items, err := s.wishlist.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, dbError("list wishlist", err)
	}
	return items, nil
}

func (s *wishlistService) Add(ctx context.Context, caller utils.Identity, req request_models.WishlistRequest) (*db_models.WishlistItem, error) {
	hasTour, hasHotel := strings.TrimSpace(req.TourID) != "", strings.TrimSpace(req.HotelID) != ""
	if hasTour == hasHotel {
		return nil, utils.ErrAmbiguousTarget
	}

	item := &db_models.WishlistItem{UserID: caller.UserID}
	if hasTour {
		id, err := parseID(req.TourID, "tourId")
		if err != nil {
			return nil, err
		}
		tour, err := s.tours.FindById(ctx, id)
		if err != nil {
			return nil, dbError("find tour", err)
		}
		if tour == nil {
			return nil, utils.ErrTourNotFound
		}
		item.TourID = &id
	} else {
		id, err := parseID(req.HotelID, "hotelId")
		if err != nil {
			return nil, err
		}
		hotel, err := s.hotels.FindById(ctx, id)
		if err != nil {
			return nil, dbError("find hotel", err)
		}
		if hotel == nil {
			return nil, utils.ErrHotelNotFound
		}
		item.HotelID = &id
	}

	existing, err := s.wishlist.FindByTarget(ctx, caller.UserID, item.TourID, item.HotelID)
	if err != nil {
		return nil, dbError("find wishlist item", err)
	}
	if existing != nil {
		return nil, utils.ErrWishlistDuplicate
	}
	if err := s.wishlist.Insert(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrWishlistDuplicate
		}
		return nil, dbError("insert wishlist item", err)
	}
	return item, nil
}

func (s *wishlistService) Remove(ctx context.Context, caller utils.Identity, id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrWishlistNotFound
	}
	item, err := s.wishlist.FindById(ctx, itemID)
	if err != nil {
		return dbError("find wishlist item", err)
	}
	if item == nil || item.UserID != caller.UserID {
		return utils.ErrWishlistNotFound
	}
	if err := s.wishlist.Delete(ctx, itemID); err != nil {
		return dbError("delete wishlist item", err)
	}
	return nil
}

type preferencesService struct {
	prefs repositories.PreferencesRepository
}

func NewPreferencesService(prefs repositories.PreferencesRepository) PreferencesService {
	return &preferencesService{prefs: prefs}
}

// Get returns nil without error when the user has not saved preferences yet.
func (s *preferencesService) Get(ctx context.Context, caller utils.Identity) (*db_models.UserPreferences, error) {
	p, err := s.prefs.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, dbError("find preferences", err)
	}
	return p, nil
}

func cleanList(in []string) datatypes.JSONSlice[string] {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return datatypes.JSONSlice[string](out)
}

func (s *preferencesService) Upsert(ctx context.Context, caller utils.Identity, req request_models.PreferencesRequest) (*db_models.UserPreferences, error) {
	p := &db_models.UserPreferences{
		UserID:                caller.UserID,
		PreferredDestinations: cleanList(req.PreferredDestinations),
		DietaryRestrictions:   cleanList(req.DietaryRestrictions),
		AccommodationType:     cleanList(req.AccommodationType),
		TravelStyle:           cleanList(req.TravelStyle),
		BudgetRange:           strings.TrimSpace(req.BudgetRange),
	}
	if err := s.prefs.Upsert(ctx, p); err != nil {
		return nil, dbError("upsert preferences", err)
	}
	return p, nil
}

func (s *preferencesService) Patch(ctx context.Context, caller utils.Identity, req request_models.PreferencesPatch) (*db_models.UserPreferences, error) {
	p, err := s.prefs.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, dbError("find preferences", err)
	}
	if p == nil {
		return nil, utils.ErrPreferencesNotFound
	}
	if req.PreferredDestinations != nil {
		p.PreferredDestinations = cleanList(*req.PreferredDestinations)
	}
	if req.DietaryRestrictions != nil {
		p.DietaryRestrictions = cleanList(*req.DietaryRestrictions)
	}
	if req.AccommodationType != nil {
		p.AccommodationType = cleanList(*req.AccommodationType)
	}
	if req.TravelStyle != nil {
		p.TravelStyle = cleanList(*req.TravelStyle)
	}
	if req.BudgetRange != nil {
		p.BudgetRange = strings.TrimSpace(*req.BudgetRange)
	}
	if err := s.prefs.Update(ctx, p); err != nil {
		return nil, dbError("update preferences", err)
	}
	return p, nil
}
