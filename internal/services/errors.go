package services

import (
	"fmt"

	"github.com/google/uuid"

	"voyago/pkg/utils"
)

func dbError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", utils.ErrDatabaseError, op, err)
}

func parseID(s, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, utils.Validationf("%s must be a valid id", field)
	}
	return id, nil
}
