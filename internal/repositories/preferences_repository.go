package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type PreferencesRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*db_models.UserPreferences, error)
	// Upsert creates the user's preferences or overwrites every field of the
	// existing row.
	Upsert(ctx context.Context, prefs *db_models.UserPreferences) error
	Update(ctx context.Context, prefs *db_models.UserPreferences) error
}

type preferencesRepository struct {
	db *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

func (r *preferencesRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*db_models.UserPreferences, error) {
	var prefs db_models.UserPreferences
	if err := r.db.WithContext(ctx).First(&prefs, "user_id = ?", userID).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &prefs, nil
}

func (r *preferencesRepository) Upsert(ctx context.Context, prefs *db_models.UserPreferences) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.UserPreferences
		err := tx.First(&existing, "user_id = ?", prefs.UserID).Error
		if err != nil {
			if notFoundAsNil(err) != nil {
				return err
			}
			return duplicateAsSentinel(tx.Create(prefs).Error)
		}
		prefs.ID = existing.ID
		prefs.CreatedAt = existing.CreatedAt
		return updatePreferences(tx, prefs)
	})
}

func (r *preferencesRepository) Update(ctx context.Context, prefs *db_models.UserPreferences) error {
	return updatePreferences(r.db.WithContext(ctx), prefs)
}

func updatePreferences(db *gorm.DB, prefs *db_models.UserPreferences) error {
	return db.Model(prefs).Select(
		"preferred_destinations", "dietary_restrictions", "accommodation_type",
		"travel_style", "budget_range", "updated_at",
	).Updates(prefs).Error
}
