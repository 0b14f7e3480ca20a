package cloudsuite

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrNoLocation - a suite filesystem accessor was called before any location was bound
	ErrNoLocation = Error("no test location bound for suite")

	// ErrLocalLocation - an attempt was made to bind a local (file scheme) location as the test target
	ErrLocalLocation = Error("local filesystem may not be used as an integration test target")

	// ErrSuiteDisabled - an operation requiring a resolved configuration was called on a disabled suite
	ErrSuiteDisabled = Error("suite is disabled: no test configuration resolved")
)
