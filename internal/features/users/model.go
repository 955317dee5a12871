package users

import (
	"errors"

	"github.com/coastwatch/coastwatch-api/internal/pkg/authz"
)

// ListFilter narrows the admin user listing.
type ListFilter struct {
	Role   string
	Status string
	Search string
}

var validStatuses = []string{"active", "inactive", "suspended", "pending"}

// ValidateListFilter checks the optional role/status filter values.
func ValidateListFilter(f ListFilter) error {
	if f.Role != "" && !authz.IsValidRole(f.Role) {
		return errors.New("invalid role filter")
	}
	if f.Status != "" && !contains(validStatuses, f.Status) {
		return errors.New("invalid status filter")
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
