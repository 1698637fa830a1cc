package infra

import (
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(db_models.All()...)
}
