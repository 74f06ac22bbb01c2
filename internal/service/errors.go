package service

import (
	"errors"
	"fmt"

	"github.com/blogfolio-api/internal/validation"
)

// Domain error taxonomy. Handlers map these onto HTTP status codes;
// everything else surfaces as an internal error.
var (
	// ErrInvalidArgument rejects a request before any store access
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a lookup that matched nothing
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable marks a required data source failure
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrForbidden marks an ownership or role check failure
	ErrForbidden = errors.New("forbidden")

	// ErrConflict marks a uniqueness violation (duplicate username)
	ErrConflict = errors.New("conflict")
)

// ValidationFailure carries field-level errors behind ErrInvalidArgument
type ValidationFailure struct {
	Errors []validation.ValidationError
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("validation failed: %d field error(s)", len(e.Errors))
}

// Unwrap makes every validation failure match ErrInvalidArgument
func (e *ValidationFailure) Unwrap() error {
	return ErrInvalidArgument
}

func validationErr(errs []validation.ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationFailure{Errors: errs}
}
