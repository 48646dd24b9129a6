package services

import (
	"errors"
	"fmt"
)

// ErrAmbiguousTier is returned when two qualifying active tiers share the
// same activation date and no deterministic winner exists.
var ErrAmbiguousTier = errors.New("multiple active price tiers share the same activation date")

// NotFoundError reports a missing referenced entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ConstraintError reports a field value outside its allowed range.
type ConstraintError struct {
	Field   string
	Message string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
