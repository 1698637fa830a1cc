package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type ReviewRepository interface {
	Insert(ctx context.Context, review *db_models.Review) error
	Exists(ctx context.Context, userID, tourID uuid.UUID) (bool, error)
	ListByTour(ctx context.Context, tourID uuid.UUID) ([]db_models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, review *db_models.Review) error {
	return duplicateAsSentinel(r.db.WithContext(ctx).Create(review).Error)
}

func (r *reviewRepository) Exists(ctx context.Context, userID, tourID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Review{}).
		Where("user_id = ? AND tour_id = ?", userID, tourID).
		Count(&n).Error
	return n > 0, err
}

func (r *reviewRepository) ListByTour(ctx context.Context, tourID uuid.UUID) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("tour_id = ?", tourID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
