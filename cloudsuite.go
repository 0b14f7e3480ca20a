package cloudsuite

const (
	// ConfEnvVar names the environment variable holding the path of the external test
	// configuration file. Unset, empty, or the UnsetToken disables the suites.
	ConfEnvVar = "CLOUDSUITE_TEST_CONF"

	// CommitterEnvVar names the environment variable that, when set, overrides the
	// committer selection found in (or defaulted into) the test configuration.
	CommitterEnvVar = "CLOUDSUITE_COMMITTER"

	// UnsetToken is the reserved value meaning "treat ConfEnvVar as if it were never
	// set". Matched case-insensitively, with or without surrounding parentheses, since
	// property-clearing tooling emits "(unset)".
	UnsetToken = "unset"

	// CommitterKey is the configuration key under which the resolved committer
	// selection is stored.
	CommitterKey = "committer.name"

	// MasterKey is the configuration key naming the execution target for job
	// configurations produced for the compute context under test.
	MasterKey = "job.master"

	// DefaultMaster is the execution target used when the configuration names none.
	DefaultMaster = "local[*]"

	// TestDirNamespace is the fixed path segment under which every suite derives its
	// test directory. No scheme is attached until the path is qualified against a
	// bound location.
	TestDirNamespace = "/cloudsuite/"
)

// Known committer strategy names. Only the selection string matters to this module;
// the strategies themselves belong to the storage-write layer under test.
const (
	DirectoryCommitter   = "directory"
	PartitionedCommitter = "partitioned"
	MagicCommitter       = "magic"

	// DefaultCommitter is selected when neither the override environment variable nor
	// the configuration file names a committer.
	DefaultCommitter = DirectoryCommitter
)

// ValidCommitter reports whether name is one of the known committer strategies.
func ValidCommitter(name string) bool {
	switch name {
	case DirectoryCommitter, PartitionedCommitter, MagicCommitter:
		return true
	}
	return false
}
