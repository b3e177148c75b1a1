package syncerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrRead indicates an error occurred while reading.
	ErrRead = errors.New("read")

	// ErrReadFile indicates an error occurred while reading a file.
	ErrReadFile = fmt.Errorf("file: %w", ErrRead)

	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)

	// ErrFileNotFound indicates a target file doesn't exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrVersionNotFound indicates the manifest has no version field.
	ErrVersionNotFound = errors.New("no version field found")

	// ErrMalformedVersion indicates a version line that can't be parsed.
	ErrMalformedVersion = errors.New("malformed version line")

	// ErrInvalidConfig indicates the configuration file couldn't be used.
	ErrInvalidConfig = errors.New("invalid config")
)
