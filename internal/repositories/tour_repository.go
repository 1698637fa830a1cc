package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"voyago/internal/models/db_models"
)

type CatalogSearch struct {
	Query    string
	Location string
	MinPrice float64
	MaxPrice float64
}

type TourRepository interface {
	WithTx(tx *gorm.DB) TourRepository
	Insert(ctx context.Context, tour *db_models.Tour) error
	Update(ctx context.Context, tour *db_models.Tour) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Tour, error)
	// FindByIdForUpdate locks the tour row until the surrounding transaction
	// ends. Only meaningful on a repository bound with WithTx.
	FindByIdForUpdate(ctx context.Context, id uuid.UUID) (*db_models.Tour, error)
	List(ctx context.Context, featuredOnly bool) ([]db_models.Tour, error)
	Search(ctx context.Context, s CatalogSearch) ([]db_models.Tour, error)
	// DeleteCascade removes the tour with its images, reviews, wishlist
	// entries, bookings and their payment plans. The removed images are
	// returned so their files can be cleaned up.
	DeleteCascade(ctx context.Context, id uuid.UUID) ([]db_models.Image, error)
}

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) WithTx(tx *gorm.DB) TourRepository {
	return &tourRepository{db: tx}
}

func (r *tourRepository) Insert(ctx context.Context, tour *db_models.Tour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *tourRepository) Update(ctx context.Context, tour *db_models.Tour) error {
	return r.db.WithContext(ctx).Model(tour).Select(
		"title", "description", "location", "price", "duration", "max_people", "featured", "updated_at",
	).Updates(tour).Error
}

func (r *tourRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Tour, error) {
	var tour db_models.Tour
	err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		First(&tour, "id = ?", id).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &tour, nil
}

func (r *tourRepository) FindByIdForUpdate(ctx context.Context, id uuid.UUID) (*db_models.Tour, error) {
	var tour db_models.Tour
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&tour, "id = ?", id).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &tour, nil
}

func (r *tourRepository) List(ctx context.Context, featuredOnly bool) ([]db_models.Tour, error) {
	var tours []db_models.Tour
	q := r.db.WithContext(ctx).Preload("Images", orderImages)
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}
	err := q.Order("created_at DESC").Find(&tours).Error
	return tours, err
}

func (r *tourRepository) Search(ctx context.Context, s CatalogSearch) ([]db_models.Tour, error) {
	var tours []db_models.Tour
	q := r.db.WithContext(ctx).Preload("Images", orderImages).
		Where("price >= ? AND price <= ?", s.MinPrice, s.MaxPrice)
	if s.Query != "" {
		p := likePattern(s.Query)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", p, p)
	}
	if s.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", likePattern(s.Location))
	}
	err := q.Order("created_at DESC").Find(&tours).Error
	return tours, err
}

func (r *tourRepository) DeleteCascade(ctx context.Context, id uuid.UUID) ([]db_models.Image, error) {
	var images []db_models.Image
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tour_id = ?", id).Find(&images).Error; err != nil {
			return err
		}
		if err := tx.Where("tour_id = ?", id).Delete(&db_models.Image{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tour_id = ?", id).Delete(&db_models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tour_id = ?", id).Delete(&db_models.WishlistItem{}).Error; err != nil {
			return err
		}
		if err := deleteBookingsWhere(tx, "tour_id = ?", id); err != nil {
			return err
		}
		return tx.Delete(&db_models.Tour{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}
