// Package errors error module.
package errors

import (
	"encoding/json"
	"fmt"
)

var (
	// ErrConfiguration illegal or incompatible beam spot configuration.
	ErrConfiguration = fmt.Errorf("configuration")
	// ErrLogic illegal call on an already configured generator.
	ErrLogic = fmt.Errorf("logicerror")
	// ErrNotFound error not found.
	ErrNotFound = fmt.Errorf("notfound")
	// ErrMalformed error malformed request.
	ErrMalformed = fmt.Errorf("malformed")
	// ErrInvalidForm form error.
	ErrInvalidForm = fmt.Errorf("formerror")
	// ErrInternalServerError Internal Server Error.
	ErrInternalServerError = fmt.Errorf("internal")
)

// FormError ...
type FormError map[string]string

// NewFormError ...
func NewFormError() FormError {
	return FormError{"reason": ErrInvalidForm.Error()}
}

// Error ...
func (fe FormError) Error() string {
	return fmt.Sprintf("%+v", fe)
}

// MarshalJSON ...
func (fe FormError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string(fe))
}

// Unwrap makes errors.Is(fe, ErrInvalidForm) hold.
func (fe FormError) Unwrap() error {
	return ErrInvalidForm
}
