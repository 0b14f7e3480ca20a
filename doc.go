/*
Package cloudsuite provides scaffolding for integration test suites that run against real
cloud object stores through the vfs abstraction (github.com/c2fo/vfs/v7).

It is not a storage engine. It solves the housekeeping every cloud integration suite
otherwise reimplements:

  - resolving an external configuration file that names cloud credentials and test
    options, selected by an environment variable so CI and developers can point suites
    at different accounts
  - enabling whole suites when that configuration is present and cleanly skipping them
    (enumerated, never silently dropped) when it is not
  - binding a vfs.Location per suite and refusing local-filesystem bindings, so a suite
    meant to exercise remote storage can never silently degrade to local disk
  - selecting a committer strategy for the distributed-write layer under test with a
    defined precedence (environment override, then configuration file, then default)
  - best-effort teardown cleanup of the suite's test directory that never fails a run
  - producing job configuration objects for a compute context under test

A typical suite embeds suite.CloudSuite:

	type S3CommitterSuite struct {
		suite.CloudSuite
	}

	func (s *S3CommitterSuite) SetupSuite() {
		s.CloudSuite.SetupSuite()
		if s.Enabled() {
			s.Require().NoError(s.BindURI(s.RequiredOption("test.uri")))
		}
	}

	func (s *S3CommitterSuite) TestCommits() {
		s.ConditionalTest("directory committer", nil, func() {
			// ...
		})
	}

Suites are driven by two environment variables: CLOUDSUITE_TEST_CONF names the
configuration file (absent or the reserved token "unset" disables the suites), and
CLOUDSUITE_COMMITTER optionally overrides the committer selection.
*/
package cloudsuite
