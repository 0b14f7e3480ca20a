// Package jobconf builds configuration objects for the compute-framework context that
// integration suites hand their resolved cloud options to. It is a value type only;
// no execution engine lives here.
package jobconf
