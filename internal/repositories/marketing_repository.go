package repositories

import (
	"context"

	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type MarketingRepository interface {
	InsertContactMessage(ctx context.Context, msg *db_models.ContactMessage) error
	ListTestimonials(ctx context.Context) ([]db_models.Testimonial, error)
}

type marketingRepository struct {
	db *gorm.DB
}

func NewMarketingRepository(db *gorm.DB) MarketingRepository {
	return &marketingRepository{db: db}
}

func (r *marketingRepository) InsertContactMessage(ctx context.Context, msg *db_models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *marketingRepository) ListTestimonials(ctx context.Context) ([]db_models.Testimonial, error) {
	var items []db_models.Testimonial
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}
