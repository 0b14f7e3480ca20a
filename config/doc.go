/*
Package config resolves the external test configuration that gates cloud integration
suites.

Resolution is a three-way outcome: absent (the suites are disabled, not an error),
failed (a file was named but cannot be loaded, which fails fast), or present (an
immutable Config whose committer selection has already been resolved with override >
file > default precedence).
*/
package config
