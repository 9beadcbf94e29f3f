// Package shared holds helpers used across packages that belong to no single
// layer.
//
// - testutil: log capture for asserting structured log output in tests
package shared
