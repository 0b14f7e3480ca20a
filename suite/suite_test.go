package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/vfs/v7/backend/mem"
	"github.com/c2fo/vfs/v7/mocks"

	"github.com/c2fo/cloudsuite"
	"github.com/c2fo/cloudsuite/config"
)

func TestCloudSuite(t *testing.T) {
	suite.Run(t, new(cloudSuiteTests))
}

type cloudSuiteTests struct {
	suite.Suite
}

// newSuite returns a CloudSuite wired to the current test with a hand-built
// configuration, bypassing environment resolution.
func (s *cloudSuiteTests) newSuite(settings map[string]string) *CloudSuite {
	cs := &CloudSuite{CleanupOnTeardown: true}
	cs.SetT(s.T())
	if settings != nil {
		cs.conf = config.New(settings)
	}
	return cs
}

// writeConf writes a yaml test configuration and points the resolver environment
// variable at it.
func (s *cloudSuiteTests) writeConf(content string) {
	path := filepath.Join(s.T().TempDir(), "cloud-tests.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0600))
	s.T().Setenv(cloudsuite.ConfEnvVar, path)
}

func (s *cloudSuiteTests) TestEnabled() {
	s.False(s.newSuite(nil).Enabled(), "no configuration means disabled")
	s.True(s.newSuite(map[string]string{"a": "1"}).Enabled(), "configuration present means enabled")

	probed := s.newSuite(map[string]string{"a": "1"})
	probed.Probe = func() bool { return false }
	s.False(probed.Enabled(), "a failing probe disables an otherwise enabled suite")
}

func (s *cloudSuiteTests) TestRequiredOptionTrims() {
	cs := s.newSuite(map[string]string{"test.uri": "  s3://bucket/itests/  "})
	s.Equal("s3://bucket/itests/", cs.RequiredOption("test.uri"))
}

func (s *cloudSuiteTests) TestSetLocationRejectsLocal() {
	localFs := new(mocks.FileSystem)
	localFs.On("Scheme").Return("file")
	loc := new(mocks.Location)
	loc.On("FileSystem").Return(localFs)
	loc.On("URI").Return("file:///tmp/itests/")

	cs := s.newSuite(map[string]string{"a": "1"})
	err := cs.SetLocation(loc)
	s.Require().Error(err)
	s.ErrorIs(err, cloudsuite.ErrLocalLocation)

	_, err = cs.Location()
	s.ErrorIs(err, cloudsuite.ErrNoLocation, "rejected binding must not be assigned")
}

func (s *cloudSuiteTests) TestSetLocationAcceptsRemote() {
	loc, err := mem.NewFileSystem().NewLocation("cloudsuite", "/itests/")
	s.Require().NoError(err)

	cs := s.newSuite(map[string]string{"a": "1"})
	s.Require().NoError(cs.SetLocation(loc))

	bound, err := cs.Location()
	s.NoError(err)
	s.Same(loc, bound)
	s.Same(loc, cs.MustLocation())
}

func (s *cloudSuiteTests) TestSetLocationReplacesBinding() {
	first, err := mem.NewFileSystem().NewLocation("cloudsuite", "/first/")
	s.Require().NoError(err)
	second, err := mem.NewFileSystem().NewLocation("cloudsuite", "/second/")
	s.Require().NoError(err)

	cs := s.newSuite(map[string]string{"a": "1"})
	s.Require().NoError(cs.SetLocation(first))
	s.Require().NoError(cs.SetLocation(second))
	s.Same(second, cs.MustLocation())
}

func (s *cloudSuiteTests) TestSetLocationNil() {
	cs := s.newSuite(map[string]string{"a": "1"})
	s.ErrorIs(cs.SetLocation(nil), cloudsuite.ErrNoLocation)
}

func (s *cloudSuiteTests) TestBindURI() {
	cs := s.newSuite(map[string]string{"a": "1"})

	s.ErrorIs(cs.BindURI("file:///tmp/itests/"), cloudsuite.ErrLocalLocation)

	s.Require().NoError(cs.BindURI("mem://cloudsuite/itests/"))
	s.Equal("mem", cs.MustLocation().FileSystem().Scheme())
}

func (s *cloudSuiteTests) TestLocationUnbound() {
	cs := s.newSuite(map[string]string{"a": "1"})
	_, err := cs.Location()
	s.ErrorIs(err, cloudsuite.ErrNoLocation)
}

func (s *cloudSuiteTests) TestTestDirPath() {
	cs := s.newSuite(map[string]string{"a": "1"})
	cs.SetName("CommitterSuite")
	s.Equal("/cloudsuite/CommitterSuite/", cs.TestDirPath())
}

func (s *cloudSuiteTests) TestTestDirQualifiesAgainstBinding() {
	loc, err := mem.NewFileSystem().NewLocation("cloudsuite", "/itests/")
	s.Require().NoError(err)

	cs := s.newSuite(map[string]string{"a": "1"})
	cs.SetName("CommitterSuite")
	s.Require().NoError(cs.SetLocation(loc))

	dir, err := cs.TestDir()
	s.Require().NoError(err)
	s.Equal("/itests/cloudsuite/CommitterSuite/", dir.Path())
	s.Equal("mem", dir.FileSystem().Scheme())
}

func (s *cloudSuiteTests) TestJobConf() {
	cs := s.newSuite(map[string]string{
		"fs.endpoint":           "https://s3.example.com",
		cloudsuite.CommitterKey: cloudsuite.PartitionedCommitter,
		cloudsuite.MasterKey:    "spark://host:7077",
	})

	jc, err := cs.JobConf()
	s.Require().NoError(err)
	s.Equal("spark://host:7077", jc.Master())

	v, ok := jc.Get("fs.endpoint")
	s.True(ok)
	s.Equal("https://s3.example.com", v)

	v, ok = jc.Get(cloudsuite.CommitterKey)
	s.True(ok)
	s.Equal(cloudsuite.PartitionedCommitter, v)
}

func (s *cloudSuiteTests) TestJobConfDefaults() {
	jc, err := s.newSuite(map[string]string{"a": "1"}).JobConf()
	s.Require().NoError(err)
	s.Equal(cloudsuite.DefaultMaster, jc.Master())

	v, ok := jc.Get(cloudsuite.CommitterKey)
	s.True(ok, "a committer selection is always present")
	s.Equal(cloudsuite.DefaultCommitter, v)
}

func (s *cloudSuiteTests) TestJobConfDisabled() {
	_, err := s.newSuite(nil).JobConf()
	s.ErrorIs(err, cloudsuite.ErrSuiteDisabled)
}

func (s *cloudSuiteTests) TestSetupSuiteFromEnvironment() {
	s.writeConf("test:\n  uri: mem://cloudsuite/itests/\n")
	s.T().Setenv(cloudsuite.CommitterEnvVar, "")

	cs := &CloudSuite{}
	cs.SetT(s.T())
	cs.SetupSuite()

	s.True(cs.Enabled())
	s.True(cs.CleanupOnTeardown)
	s.Equal("mem://cloudsuite/itests/", cs.RequiredOption("test.uri"))
	s.Equal(cloudsuite.DefaultCommitter, cs.Config().Committer())
}

func (s *cloudSuiteTests) TestSetupSuiteDisabled() {
	s.T().Setenv(cloudsuite.ConfEnvVar, cloudsuite.UnsetToken)

	cs := &CloudSuite{}
	cs.SetT(s.T())
	cs.SetupSuite()

	s.False(cs.Enabled())
	s.Nil(cs.Config())
}
