// Package config loads the optional .versync.yaml file that overrides which
// manifest and build.gradle files are kept in sync.
package config
