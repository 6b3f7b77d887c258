// internal/services/errors.go
package services

import (
	"errors"
	"fmt"

	"github.com/javajoker/storefront-backend/internal/utils"
)

// ValidationError is a client-caused failure detected before anything is
// persisted. Message names the offending field.
type ValidationError struct {
	Field   string
	Message string
	Details []utils.ValidationError
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports an unknown catalog entry.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
