package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voyago/internal/models/db_models"
	"voyago/pkg/config"
)

func TestOpenMigrateAndSeed(t *testing.T) {
	db, err := OpenDatabase(config.Database{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	ctx := context.Background()
	res, err := Seed(ctx, db, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, len(defaultUsers), res.Users)
	assert.Equal(t, 12, res.Tours)
	assert.Equal(t, 8, res.Hotels)

	var admin db_models.User
	require.NoError(t, db.Preload("Preferences").Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.Equal(t, db_models.RoleAdmin, admin.Role)
	require.NotNil(t, admin.Preferences)
	assert.Equal(t, "$1000-$2000", admin.Preferences.BudgetRange)

	again, err := Seed(ctx, db, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, again, "rerunning the seed is a no-op")
}

func TestOpenDatabaseRejectsUnknownDriver(t *testing.T) {
	_, err := OpenDatabase(config.Database{Driver: "mysql"})
	assert.Error(t, err)
}
