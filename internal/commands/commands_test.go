package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"voyago/internal/models/db_models"
)

func sqliteOpener(t *testing.T) (opener, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return func(*cobra.Command) (*gorm.DB, func(), error) {
		return db, func() {}, nil
	}, db
}

func run(t *testing.T, open opener, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(open)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMigrateThenSeedIsRepeatable(t *testing.T) {
	open, db := sqliteOpener(t)

	out, err := run(t, open, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")

	out, err = run(t, open, "seed", "--migrate=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 5 users")

	var tours int64
	require.NoError(t, db.Model(&db_models.Tour{}).Count(&tours).Error)
	assert.Positive(t, tours)

	out, err = run(t, open, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 0 users, 0 tours")
}

func TestUsersPromote(t *testing.T) {
	open, db := sqliteOpener(t)
	_, err := run(t, open, "migrate")
	require.NoError(t, err)
	require.NoError(t, db.Create(&db_models.User{
		Name: "Kai", Email: "kai@example.com", PasswordHash: "x", Role: db_models.RoleUser,
	}).Error)

	out, err := run(t, open, "users", "promote", "--email", "Kai@Example.com", "--role", "manager")
	require.NoError(t, err)
	assert.Contains(t, out, "kai@example.com is now MANAGER")

	var u db_models.User
	require.NoError(t, db.Where("email = ?", "kai@example.com").First(&u).Error)
	assert.Equal(t, db_models.RoleManager, u.Role)

	_, err = run(t, open, "users", "promote", "--email", "nobody@example.com")
	assert.ErrorContains(t, err, "no account")

	_, err = run(t, open, "users", "promote", "--email", "kai@example.com", "--role", "pilot")
	assert.ErrorContains(t, err, "unknown role")
}
