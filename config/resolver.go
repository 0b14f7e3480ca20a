package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/c2fo/cloudsuite"
)

var logger atomic.Pointer[logrus.Logger]

func init() {
	logger.Store(logrus.StandardLogger())
}

// SetLogger replaces the logger used for the one-time "loaded" message. Passing nil
// restores the standard logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger.Store(l)
}

// loadLogged dedups the "loaded test configuration" message across every suite
// instance in the process, including suites constructed concurrently.
var loadLogged atomic.Bool

// Resolve loads the external test configuration named by the CLOUDSUITE_TEST_CONF
// environment variable.
//
// When the variable is unset, empty, or holds the reserved unset token, Resolve
// returns (nil, nil): not an error, the suites are simply disabled. When it names a
// file that does not exist, Resolve fails; a typo in the path must not silently
// disable a test run. Otherwise the file is loaded, the committer selection is
// resolved (CLOUDSUITE_COMMITTER override, then the file's own committer.name, then
// the default) and written back into the returned Config.
//
// Resolve is idempotent under an unchanged environment. The first successful load in
// the process logs where the configuration came from; later loads do not.
func Resolve() (*Config, error) {
	path := os.Getenv(cloudsuite.ConfEnvVar)
	if isUnset(path) {
		return nil, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: test configuration file %q: %w", cloudsuite.ConfEnvVar, path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("%s: stat test configuration file %q: %w", cloudsuite.ConfEnvVar, path, err)
	}

	settings, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	settings[cloudsuite.CommitterKey] = resolveCommitter(settings)

	if loadLogged.CompareAndSwap(false, true) {
		logger.Load().Infof("loaded test configuration from %s", path)
	}

	return &Config{settings: settings}, nil
}

// isUnset reports whether the property value means "never set": empty, the reserved
// token, or the parenthesized form property-clearing tools emit.
func isUnset(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "" || v == cloudsuite.UnsetToken || v == "("+cloudsuite.UnsetToken+")"
}

// loadFile reads the key-value file at path into a flat string map. The format is
// whatever viper can detect from the extension; extensionless files are read as yaml.
// Nested keys flatten with "." separators.
func loadFile(path string) (map[string]string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read test configuration file %q: %w", path, err)
	}

	settings := make(map[string]string)
	for _, key := range v.AllKeys() {
		settings[key] = v.GetString(key)
	}
	return settings, nil
}

// resolveCommitter applies the selection precedence. An explicit override always
// wins; the file's own value is never allowed to overwrite it.
func resolveCommitter(settings map[string]string) string {
	if override := strings.TrimSpace(os.Getenv(cloudsuite.CommitterEnvVar)); override != "" {
		return override
	}
	if own := strings.TrimSpace(settings[cloudsuite.CommitterKey]); own != "" {
		return own
	}
	return cloudsuite.DefaultCommitter
}
