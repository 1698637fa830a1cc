package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type WishlistRepository interface {
	Insert(ctx context.Context, item *db_models.WishlistItem) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.WishlistItem, error)
	// FindByTarget looks up the user's entry for a tour or a hotel; exactly one
	// of tourID and hotelID is expected to be set.
	FindByTarget(ctx context.Context, userID uuid.UUID, tourID, hotelID *uuid.UUID) (*db_models.WishlistItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.WishlistItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Insert(ctx context.Context, item *db_models.WishlistItem) error {
	return duplicateAsSentinel(r.db.WithContext(ctx).Create(item).Error)
}

func (r *wishlistRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.WishlistItem, error) {
	var item db_models.WishlistItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &item, nil
}

func (r *wishlistRepository) FindByTarget(ctx context.Context, userID uuid.UUID, tourID, hotelID *uuid.UUID) (*db_models.WishlistItem, error) {
	var item db_models.WishlistItem
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if tourID != nil {
		q = q.Where("tour_id = ?", *tourID)
	} else {
		q = q.Where("hotel_id = ?", *hotelID)
	}
	if err := q.First(&item).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &item, nil
}

func (r *wishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.WishlistItem, error) {
	var items []db_models.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Tour").
		Preload("Tour.Images", orderImages).
		Preload("Hotel").
		Preload("Hotel.Images", orderImages).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *wishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.WishlistItem{}, "id = ?", id).Error
}
