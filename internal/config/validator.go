package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation error [%s=%s]: %s", e.Field, e.Value, e.Message)
}

// ValidationResult holds the results of configuration validation
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
	Valid    bool
}

// AddError adds a validation error
func (r *ValidationResult) AddError(field, value, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: message})
	r.Valid = false
}

// AddWarning adds a validation warning
func (r *ValidationResult) AddWarning(field, value, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: message})
}

// Err joins all validation errors, or returns nil when valid.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// Validate validates the configuration and returns validation results.
// Credential values are never echoed back; only their position is reported.
func (c *Config) Validate() ValidationResult {
	result := ValidationResult{Valid: true}

	if _, err := parsePort(c.Server.Port); err != nil {
		result.AddError("port", c.Server.Port, err.Error())
	}

	if u, err := url.Parse(c.Upstream.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		result.AddError("gemini_base_url", c.Upstream.BaseURL, "must be an absolute URL")
	}
	if strings.TrimSpace(c.Upstream.Model) == "" {
		result.AddError("gemini_model", c.Upstream.Model, "model is required")
	}
	if c.Upstream.Temperature < 0 || c.Upstream.Temperature > 2 {
		result.AddError("temperature", strconv.FormatFloat(c.Upstream.Temperature, 'f', -1, 64), "must be between 0 and 2")
	}
	if c.Upstream.ProxyURL != "" {
		if _, err := url.Parse(c.Upstream.ProxyURL); err != nil {
			result.AddError("proxy_url", c.Upstream.ProxyURL, "invalid proxy URL format")
		}
	}

	for i, key := range c.Credentials.APIKeys {
		if strings.TrimSpace(key) == "" {
			result.AddError(fmt.Sprintf("gemini_api_keys[%d]", i), "", "credential must not be empty")
		}
	}
	if len(c.Credentials.APIKeys) == 0 && !c.Credentials.AutoLoadEnvCreds {
		result.AddWarning("gemini_api_keys", "", "no credentials configured; generation requests will fail")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			result.AddError("rate_limit_rps", strconv.Itoa(c.RateLimit.RPS), "must be positive when rate limiting is enabled")
		}
		if c.RateLimit.Burst <= 0 {
			result.AddError("rate_limit_burst", strconv.Itoa(c.RateLimit.Burst), "must be positive when rate limiting is enabled")
		}
	}
	return result
}
