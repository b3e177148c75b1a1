// Package version provides build information for the versync binary.
//
// The values are stamped at link time; the revision falls back to the VCS
// information embedded by the Go toolchain.
package version
