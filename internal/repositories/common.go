package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres SQLSTATE for a unique index conflict.
const uniqueViolation = "23505"

// notFoundAsNil turns gorm's record-not-found into a nil error so callers can
// test the returned pointer instead.
func notFoundAsNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// duplicateAsSentinel reports unique index conflicts as gorm.ErrDuplicatedKey.
// gorm's postgres translator only understands pgx errors, so lib/pq's are
// matched here; sqlite conflicts arrive already translated.
func duplicateAsSentinel(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", gorm.ErrDuplicatedKey, pqErr.Constraint)
	}
	return err
}

func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("images.created_at ASC")
}

// likePattern builds a case-insensitive substring pattern for LOWER(col) LIKE ?.
func likePattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}
