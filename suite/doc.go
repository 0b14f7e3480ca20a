/*
Package suite provides the base test suite for cloud storage integration tests.

CloudSuite layers the activation mechanism onto testify's suite: the external test
configuration is resolved once per suite instance, Enabled derives from its presence,
and ConditionalTest registers each test as runnable or administratively skipped at
declaration time so that a disabled suite's tests are enumerated, never dropped.

Suites bind exactly one vfs.Location at a time; bindings with the local file scheme
are rejected outright. Teardown cleanup of the suite's derived test directory is
best-effort and never fails a run.
*/
package suite
