// Package manifest reads and rewrites the version field of a package
// manifest (package.json).
//
// The manifest is treated as plain text rather than JSON: the version is
// found by substring match so that formatting and key order are preserved
// exactly when the field is rewritten.
package manifest
