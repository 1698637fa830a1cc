package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type HotelRepository interface {
	WithTx(tx *gorm.DB) HotelRepository
	Insert(ctx context.Context, hotel *db_models.Hotel) error
	Update(ctx context.Context, hotel *db_models.Hotel) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Hotel, error)
	List(ctx context.Context, featuredOnly bool) ([]db_models.Hotel, error)
	Search(ctx context.Context, s CatalogSearch) ([]db_models.Hotel, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) ([]db_models.Image, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) WithTx(tx *gorm.DB) HotelRepository {
	return &hotelRepository{db: tx}
}

func (r *hotelRepository) Insert(ctx context.Context, hotel *db_models.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) Update(ctx context.Context, hotel *db_models.Hotel) error {
	return r.db.WithContext(ctx).Model(hotel).Select(
		"name", "description", "location", "price", "rating", "amenities", "featured", "updated_at",
	).Updates(hotel).Error
}

func (r *hotelRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Hotel, error) {
	var hotel db_models.Hotel
	err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		First(&hotel, "id = ?", id).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &hotel, nil
}

func (r *hotelRepository) List(ctx context.Context, featuredOnly bool) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	q := r.db.WithContext(ctx).Preload("Images", orderImages)
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}
	err := q.Order("created_at DESC").Find(&hotels).Error
	return hotels, err
}

func (r *hotelRepository) Search(ctx context.Context, s CatalogSearch) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	q := r.db.WithContext(ctx).Preload("Images", orderImages).
		Where("price >= ? AND price <= ?", s.MinPrice, s.MaxPrice)
	if s.Query != "" {
		p := likePattern(s.Query)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", p, p)
	}
	if s.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", likePattern(s.Location))
	}
	err := q.Order("created_at DESC").Find(&hotels).Error
	return hotels, err
}

func (r *hotelRepository) DeleteCascade(ctx context.Context, id uuid.UUID) ([]db_models.Image, error) {
	var images []db_models.Image
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", id).Find(&images).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", id).Delete(&db_models.Image{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", id).Delete(&db_models.WishlistItem{}).Error; err != nil {
			return err
		}
		if err := deleteBookingsWhere(tx, "hotel_id = ?", id); err != nil {
			return err
		}
		return tx.Delete(&db_models.Hotel{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}
