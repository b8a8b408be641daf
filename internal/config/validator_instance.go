package config

import (
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("source_location", func(fl validator.FieldLevel) bool {
			return isValidSourceLocation(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isValidSourceLocation accepts http(s) URLs with a host and syntactically valid file paths.
func isValidSourceLocation(location string) bool {
	if strings.TrimSpace(location) == "" {
		return false
	}

	if parsedURL, err := url.Parse(location); err == nil && parsedURL.Scheme != "" && len(parsedURL.Scheme) > 1 {
		scheme := strings.ToLower(parsedURL.Scheme)
		if scheme == "http" || scheme == "https" {
			return parsedURL.Host != ""
		}
		return false
	}

	return isValidFilePath(location)
}

// isValidFilePath performs syntactic validation of file paths without filesystem access
func isValidFilePath(path string) bool {
	if path == "" {
		return false
	}

	// Check for NUL characters
	if strings.Contains(path, "\x00") {
		return false
	}

	return strings.TrimSpace(path) == path
}
