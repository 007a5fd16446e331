// Package config loads siteicons settings from an optional YAML file, .env
// files and environment variables, in increasing order of precedence.
package config

import (
	"time"

	"github.com/rojanmagar2001/siteicons/internal/logger"
)

const (
	DefaultUserAgent    = "siteicons/0.1"
	DefaultTimeout      = 10 * time.Second
	DefaultConcurrency  = 8
	DefaultRate         = 20
	DefaultPerHostRate  = 10
	DefaultPrefixBytes  = 100
	DefaultMaxPageBytes = 5 << 20
)

type Config struct {
	UserAgent string `yaml:"user_agent" env:"SITEICONS_USER_AGENT"`
	// Timeout bounds each HTTP request, not the whole run.
	Timeout      time.Duration `yaml:"timeout" env:"SITEICONS_TIMEOUT"`
	Concurrency  int           `yaml:"concurrency" env:"SITEICONS_CONCURRENCY"`
	Rate         int           `yaml:"rate" env:"SITEICONS_RATE"`
	PerHostRate  int           `yaml:"per_host_rate" env:"SITEICONS_PER_HOST_RATE"`
	PrefixBytes  int64         `yaml:"prefix_bytes" env:"SITEICONS_PREFIX_BYTES"`
	MaxPageBytes int64         `yaml:"max_page_bytes" env:"SITEICONS_MAX_PAGE_BYTES"`

	Logging logger.Config `yaml:"logging"`
}

func (c *Config) SetDefaults() {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.Rate <= 0 {
		c.Rate = DefaultRate
	}
	if c.PerHostRate <= 0 {
		c.PerHostRate = DefaultPerHostRate
	}
	if c.PrefixBytes <= 0 {
		c.PrefixBytes = DefaultPrefixBytes
	}
	if c.MaxPageBytes <= 0 {
		c.MaxPageBytes = DefaultMaxPageBytes
	}
	c.Logging.SetDefaults()
}

// Default returns a Config with every default applied.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}
