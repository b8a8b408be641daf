package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return showcaseerrors.NewValidationError("config", "configuration is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

// convertValidationError normalizes validator errors into showcase validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := ve.Field()
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return showcaseerrors.NewValidationError(field, msg, err)
	}

	return showcaseerrors.NewValidationError("config", err.Error(), err)
}
