package config

import "github.com/adamwoolhether/podio/internal/validate"

// FieldError is a single invalid setting.
type FieldError = validate.FieldError

// FieldErrors lists every invalid setting of a [Config].
type FieldErrors = validate.FieldErrors

// Validate checks cfg against its declared tags.
func Validate(cfg Config) error {
	return validate.Check(cfg)
}
