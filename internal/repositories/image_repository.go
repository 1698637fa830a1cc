package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type ImageRepository interface {
	InsertMany(ctx context.Context, images []db_models.Image) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Image, error)
	ListByTour(ctx context.Context, tourID uuid.UUID) ([]db_models.Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) InsertMany(ctx context.Context, images []db_models.Image) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

func (r *imageRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Image, error) {
	var img db_models.Image
	if err := r.db.WithContext(ctx).First(&img, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &img, nil
}

func (r *imageRepository) ListByTour(ctx context.Context, tourID uuid.UUID) ([]db_models.Image, error) {
	var images []db_models.Image
	err := r.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("created_at ASC").
		Find(&images).Error
	return images, err
}

func (r *imageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Image{}, "id = ?", id).Error
}
