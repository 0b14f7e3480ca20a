package config

import (
	"fmt"
	"maps"
	"strings"

	"github.com/c2fo/cloudsuite"
)

// Config is the immutable set of options loaded from the external test configuration
// file, with the committer selection already resolved into it. A nil *Config means no
// configuration was provided and the owning suite is disabled.
type Config struct {
	settings map[string]string
}

// New returns a Config holding a copy of settings. Mostly useful for tests of suite
// code; production configs come from Resolve.
func New(settings map[string]string) *Config {
	return &Config{settings: maps.Clone(settings)}
}

// Option returns the trimmed value of key. It never returns an empty string: a key
// that is missing, or blank after trimming, yields an error naming the key.
func (c *Config) Option(key string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("option %q: no test configuration resolved", key)
	}
	v := strings.TrimSpace(c.settings[key])
	if v == "" {
		return "", fmt.Errorf("unset or empty configuration option %q", key)
	}
	return v, nil
}

// OptionDefault returns the trimmed value of key, or def when the key is missing or
// blank.
func (c *Config) OptionDefault(key, def string) string {
	v, err := c.Option(key)
	if err != nil {
		return def
	}
	return v
}

// Committer returns the resolved committer selection. Resolve always writes one, so
// this only falls back to the default for hand-built configs that never set it.
func (c *Config) Committer() string {
	return c.OptionDefault(cloudsuite.CommitterKey, cloudsuite.DefaultCommitter)
}

// Settings returns a copy of every option. Mutating the result does not affect the
// Config.
func (c *Config) Settings() map[string]string {
	if c == nil {
		return map[string]string{}
	}
	return maps.Clone(c.settings)
}

// Len returns the number of options held.
func (c *Config) Len() int {
	if c == nil {
		return 0
	}
	return len(c.settings)
}
