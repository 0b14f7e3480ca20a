package suite

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/c2fo/vfs/v7"
	"github.com/c2fo/vfs/v7/vfssimple"

	"github.com/c2fo/cloudsuite"
	"github.com/c2fo/cloudsuite/config"
	"github.com/c2fo/cloudsuite/jobconf"
)

// CloudSuite is the base for integration suites run against cloud object stores. It
// resolves the external test configuration once per suite instance, exposes the
// enabled/disabled decision, holds the suite's single location binding, and cleans up
// the suite's test directory on teardown.
//
// Concrete suites embed CloudSuite and, if they define their own SetupSuite, must
// call CloudSuite.SetupSuite first.
type CloudSuite struct {
	suite.Suite

	// Probe, when set, is ANDed into Enabled. It is the extension point for suites
	// that need more than "configuration present", e.g. probing that a store
	// actually answers.
	Probe func() bool

	// CleanupOnTeardown controls whether TearDownSuite deletes the suite's test
	// directory. SetupSuite sets it true.
	CleanupOnTeardown bool

	// Logger receives the suite's informational output. SetupSuite defaults it to
	// the logrus standard logger.
	Logger *logrus.Logger

	conf     *config.Config
	location vfs.Location
	name     string
	declared []DeclaredTest
}

// DeclaredTest records one ConditionalTest registration: skipped registrations are
// recorded alongside runnable ones so reporting never loses a test.
type DeclaredTest struct {
	Name   string
	Active bool
}

// SetupSuite resolves the test configuration and caches the outcome for the lifetime
// of the suite instance. A configuration file that is named but cannot be loaded
// fails the suite immediately; an absent configuration just disables it.
func (s *CloudSuite) SetupSuite() {
	if s.Logger == nil {
		s.Logger = logrus.StandardLogger()
	}
	conf, err := config.Resolve()
	s.Require().NoError(err, "resolving test configuration")
	s.conf = conf
	s.CleanupOnTeardown = true
}

// TearDownSuite performs best-effort cleanup of the suite's test directory. Nothing
// here may fail a test run: every error is logged and dropped.
func (s *CloudSuite) TearDownSuite() {
	s.cleanupTestDir()
}

// Enabled reports whether this suite should run: the configuration resolved, and the
// optional Probe (when set) agrees.
func (s *CloudSuite) Enabled() bool {
	if s.conf == nil {
		return false
	}
	if s.Probe != nil && !s.Probe() {
		return false
	}
	return true
}

// Config returns the resolved configuration; nil when the suite is disabled.
func (s *CloudSuite) Config() *config.Config {
	return s.conf
}

// RequiredOption returns the trimmed value of key from the resolved configuration,
// failing the current test when the key is missing or blank. It never returns an
// empty string.
func (s *CloudSuite) RequiredOption(key string) string {
	v, err := s.conf.Option(key)
	s.Require().NoError(err)
	return v
}

// SetName overrides the name used to derive the suite's test directory. When unset,
// the running test's name is used.
func (s *CloudSuite) SetName(name string) {
	s.name = name
}

// Name returns the suite name used for test directory derivation.
func (s *CloudSuite) Name() string {
	if s.name != "" {
		return s.name
	}
	return strings.ReplaceAll(s.T().Name(), "/", "_")
}

// TestDirPath returns the suite's test directory path: the fixed namespace segment
// plus the suite name. It is a bare path, carrying no scheme until qualified against
// a bound location via TestDir.
func (s *CloudSuite) TestDirPath() string {
	return cloudsuite.TestDirNamespace + s.Name() + "/"
}

// TestDir qualifies TestDirPath against the bound location, yielding the concrete
// location the suite writes under.
func (s *CloudSuite) TestDir() (vfs.Location, error) {
	loc, err := s.Location()
	if err != nil {
		return nil, err
	}
	return loc.NewLocation(strings.TrimPrefix(s.TestDirPath(), "/"))
}

// SetLocation binds the suite to a location. The binding is exclusive: a later call
// replaces the current binding wholesale. Local-filesystem locations are rejected
// before assignment so a remote-storage suite can never silently run against local
// disk.
func (s *CloudSuite) SetLocation(loc vfs.Location) error {
	if loc == nil {
		return fmt.Errorf("set location: %w", cloudsuite.ErrNoLocation)
	}
	if scheme := loc.FileSystem().Scheme(); scheme == "file" {
		return fmt.Errorf("set location %q (scheme %q): %w", loc.URI(), scheme, cloudsuite.ErrLocalLocation)
	}
	s.location = loc
	return nil
}

// BindURI resolves uri to a location through vfssimple and binds it via SetLocation.
func (s *CloudSuite) BindURI(uri string) error {
	loc, err := vfssimple.NewLocation(uri)
	if err != nil {
		return fmt.Errorf("bind uri %q: %w", uri, err)
	}
	return s.SetLocation(loc)
}

// Location returns the current binding, or ErrNoLocation when none has been set.
// Binding is mandatory before use.
func (s *CloudSuite) Location() (vfs.Location, error) {
	if s.location == nil {
		return nil, cloudsuite.ErrNoLocation
	}
	return s.location, nil
}

// MustLocation returns the current binding, failing the current test when none has
// been set.
func (s *CloudSuite) MustLocation() vfs.Location {
	loc, err := s.Location()
	s.Require().NoError(err)
	return loc
}

// JobConf produces a configuration object for the compute context under test: every
// resolved option, a guaranteed committer selection, and the execution target from
// the configuration when present. Disabled suites have no options to hand over.
func (s *CloudSuite) JobConf() (*jobconf.Conf, error) {
	if s.conf == nil {
		return nil, cloudsuite.ErrSuiteDisabled
	}
	c := jobconf.New().SetAll(s.conf.Settings())
	if _, ok := c.Get(cloudsuite.CommitterKey); !ok {
		c.Set(cloudsuite.CommitterKey, s.conf.Committer())
	}
	return c.SetMaster(s.conf.OptionDefault(cloudsuite.MasterKey, cloudsuite.DefaultMaster)), nil
}

func (s *CloudSuite) logger() *logrus.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logrus.StandardLogger()
}
