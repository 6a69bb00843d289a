package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ndewijer/ynab-compass/internal/apperrors"
)

// Error carries per-field validation failures so API consumers can map
// messages back to form fields.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidateUUID checks if a string is a valid UUID.
func ValidateUUID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.ErrEmptyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}
