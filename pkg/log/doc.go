// Package log builds [log/slog] handlers from command-line level and format
// strings.
package log
