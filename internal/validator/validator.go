// Package validator checks request structs before any network call is
// made. Validation rules are declared as struct tags on the request
// types themselves.
package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a request struct against its tags.
func Struct(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}
