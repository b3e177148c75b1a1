package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MacroPower/versync/pkg/paths"
	"github.com/MacroPower/versync/pkg/syncerrors"
	"github.com/MacroPower/versync/pkg/versync"
)

// DefaultFile is the config file looked up in the base directory.
const DefaultFile = ".versync.yaml"

// Config selects the files to keep in sync. Relative paths are resolved
// against the base directory.
type Config struct {
	Manifest string `yaml:"manifest"`
	Gradle   string `yaml:"gradle"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	t := versync.DefaultTargets()

	return Config{
		Manifest: t.Manifest,
		Gradle:   t.Gradle,
	}
}

// Load reads the config file at path on top of [Default]. When mustExist is
// false, a missing file yields the defaults.
func Load(path string, mustExist bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from flags.
	if errors.Is(err, fs.ErrNotExist) && !mustExist {
		return cfg, nil
	}

	if err != nil {
		return cfg, fmt.Errorf("%w %q: %w", syncerrors.ErrInvalidConfig, path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w %q: %w", syncerrors.ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// Override replaces any field of c that is set in o.
func (c Config) Override(o Config) Config {
	if o.Manifest != "" {
		c.Manifest = o.Manifest
	}

	if o.Gradle != "" {
		c.Gradle = o.Gradle
	}

	return c
}

// Resolve returns the targets with relative paths joined onto baseDir.
func (c Config) Resolve(baseDir string) versync.Targets {
	return versync.Targets{
		Manifest: paths.Resolve(baseDir, c.Manifest),
		Gradle:   paths.Resolve(baseDir, c.Gradle),
	}
}
