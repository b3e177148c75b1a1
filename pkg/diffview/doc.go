// Package diffview renders unified diffs of staged file changes.
package diffview
