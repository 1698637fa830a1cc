package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	List(ctx context.Context, offset, limit int) ([]db_models.User, int64, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role db_models.Role) error
	// DeleteCascade removes the user together with bookings, payment plans,
	// wishlist items, reviews and preferences.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, user *db_models.User) error {
	return duplicateAsSentinel(a.db.WithContext(ctx).Create(user).Error)
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := a.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &user, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := a.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &user, nil
}

func (a *accountRepository) List(ctx context.Context, offset, limit int) ([]db_models.User, int64, error) {
	var (
		users []db_models.User
		total int64
	)
	q := a.db.WithContext(ctx).Model(&db_models.User{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

func (a *accountRepository) UpdateRole(ctx context.Context, id uuid.UUID, role db_models.Role) error {
	return a.db.WithContext(ctx).Model(&db_models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"role": role}).Error
}

func (a *accountRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteBookingsWhere(tx, "user_id = ?", id); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&db_models.WishlistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&db_models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&db_models.UserPreferences{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.User{}, "id = ?", id).Error
	})
}

// deleteBookingsWhere removes matching bookings and their payment plans.
func deleteBookingsWhere(tx *gorm.DB, query string, args ...interface{}) error {
	ids := tx.Model(&db_models.Booking{}).Select("id").Where(query, args...)
	if err := tx.Where("booking_id IN (?)", ids).Delete(&db_models.PaymentPlan{}).Error; err != nil {
		return err
	}
	return tx.Where(query, args...).Delete(&db_models.Booking{}).Error
}
