package config

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// maxPrefixBytes keeps probes to a header-sized read.
const maxPrefixBytes = 64 << 10

func (c *Config) Validate() error {
	if strings.ContainsAny(c.UserAgent, "\r\n") {
		return &ValidationError{Field: "user_agent", Message: "must be a single line"}
	}
	if c.Concurrency > 256 {
		return &ValidationError{Field: "concurrency", Message: "must be at most 256"}
	}
	if c.PrefixBytes < 32 || c.PrefixBytes > maxPrefixBytes {
		return &ValidationError{Field: "prefix_bytes", Message: fmt.Sprintf("must be between 32 and %d", maxPrefixBytes)}
	}
	if c.MaxPageBytes < c.PrefixBytes {
		return &ValidationError{Field: "max_page_bytes", Message: "must not be smaller than prefix_bytes"}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Field: "logging.level", Message: "must be one of: debug, info, warn, error"}
	}
	return nil
}
