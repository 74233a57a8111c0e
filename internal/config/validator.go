package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// envNames maps struct fields to the variables that set them, so errors
// point at something the operator can change
var envNames = map[string]string{
	"DiscordToken":    EnvDiscordToken,
	"DiscordAppID":    EnvDiscordAppID,
	"DiscordGuildID":  EnvDiscordGuildID,
	"RecNetAPIURL":    EnvRecNetAPIURL,
	"RecNetSiteURL":   EnvRecNetSiteURL,
	"PrimaryTimeout":  EnvPrimaryTimeout,
	"FallbackTimeout": EnvFallbackTimeout,
	"HealthPort":      EnvHealthPort,
	"LogLevel":        EnvLogLevel,
	"LogFormat":       EnvLogFormat,
}

var validate = validator.New()

// Validate checks the configuration and reports every invalid variable
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	problems := FormatValidationError(err)
	keys := make([]string, 0, len(problems))
	for k := range problems {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, problems[k]))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// FormatValidationError turns validator errors into env var -> message pairs
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["config"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := envNames[e.Field()]
		if field == "" {
			field = e.Field()
		}
		switch e.Tag() {
		case "required":
			errs[field] = "is required"
		case "url":
			errs[field] = "must be a valid URL"
		case "numeric":
			errs[field] = "must be numeric"
		case "gt":
			errs[field] = "must be positive"
		case "oneof":
			errs[field] = fmt.Sprintf("must be one of [%s]", e.Param())
		default:
			errs[field] = "is invalid"
		}
	}

	return errs
}
