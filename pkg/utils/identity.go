package utils

import "github.com/google/uuid"

// Identity is the authenticated caller, resolved from the bearer token and
// handed to services explicitly.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func (i Identity) HasRole(roles ...string) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}
