// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"strings"

	domainerrors "huddle/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator whose failures are ErrValidationFailed with per-field details.
func New() *echoValidator {
	return &echoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}

	return fmt.Sprintf("%s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param())
}
