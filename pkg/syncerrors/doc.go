// Package syncerrors provides error definitions for version synchronization.
//
// This package defines the sentinel errors that callers match with
// [errors.Is] to tell a missing file apart from a missing version field or a
// failed write.
package syncerrors
