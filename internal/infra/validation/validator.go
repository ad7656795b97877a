// Package validation checks generated records against their struct tags before they are stored.
package validation

import (
	"fmt"
	"strings"

	domainerrors "civic/internal/domain/errors"
	"civic/internal/domain/service"
	"civic/internal/errors"

	"github.com/go-playground/validator/v10"
)

// RecordValidator wraps go-playground/validator.
type RecordValidator struct {
	validate *validator.Validate
}

// New creates a RecordValidator
func New() service.RecordValidator {
	return &RecordValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate returns ErrValidationFailed listing every failing field as "Field(tag)".
func (v *RecordValidator) Validate(record any) error {
	err := v.validate.Struct(record)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "failed to validate record")
	}

	failures := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		failures = append(failures, fmt.Sprintf("%s(%s)", fe.Namespace(), fe.Tag()))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(failures, ", "))
}
