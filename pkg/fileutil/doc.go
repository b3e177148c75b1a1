// Package fileutil reads and atomically replaces the files versync rewrites.
package fileutil
