// Package paths provides utilities for resolving the files versync operates
// on.
//
// This package locates the enclosing git repository and joins configured
// target paths onto a base directory.
package paths
