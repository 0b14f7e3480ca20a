package jobconf

import (
	"maps"

	"github.com/c2fo/cloudsuite"
)

// Conf is a configuration object for the distributed compute context under test:
// arbitrary string settings plus a master (execution target) designation. The zero
// value is usable; New is provided for symmetry with the rest of the module.
type Conf struct {
	master   string
	settings map[string]string
}

// New returns an empty Conf.
func New() *Conf {
	return &Conf{settings: make(map[string]string)}
}

// Set stores a single setting, replacing any previous value. It returns the Conf so
// settings can be chained.
func (c *Conf) Set(key, value string) *Conf {
	if c.settings == nil {
		c.settings = make(map[string]string)
	}
	c.settings[key] = value
	return c
}

// SetAll stores every entry of settings, replacing previous values key by key.
func (c *Conf) SetAll(settings map[string]string) *Conf {
	for k, v := range settings {
		c.Set(k, v)
	}
	return c
}

// SetMaster designates the execution target, e.g. "local[*]" or a cluster URL.
func (c *Conf) SetMaster(master string) *Conf {
	c.master = master
	return c
}

// Master returns the designated execution target, defaulting when none was set.
func (c *Conf) Master() string {
	if c.master == "" {
		return cloudsuite.DefaultMaster
	}
	return c.master
}

// Get returns the value for key and whether it is present.
func (c *Conf) Get(key string) (string, bool) {
	v, ok := c.settings[key]
	return v, ok
}

// Settings returns a copy of every setting.
func (c *Conf) Settings() map[string]string {
	if c.settings == nil {
		return map[string]string{}
	}
	return maps.Clone(c.settings)
}

// Len returns the number of settings held.
func (c *Conf) Len() int {
	return len(c.settings)
}
