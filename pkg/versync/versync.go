package versync

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hashicorp/go-multierror"

	"github.com/MacroPower/versync/pkg/fileutil"
	"github.com/MacroPower/versync/pkg/gradle"
	"github.com/MacroPower/versync/pkg/lineedit"
	"github.com/MacroPower/versync/pkg/manifest"
)

const (
	DefaultManifestPath = "./package.json"
	DefaultGradlePath   = "./android/build.gradle"
)

// Targets are the files kept in sync.
type Targets struct {
	// Manifest is the package manifest; its version is the source of truth.
	Manifest string
	// Gradle is the Android build configuration.
	Gradle string
}

// DefaultTargets returns the targets relative to the repository root.
func DefaultTargets() Targets {
	return Targets{
		Manifest: DefaultManifestPath,
		Gradle:   DefaultGradlePath,
	}
}

// Synchronizer reads the current version and applies new ones.
type Synchronizer struct {
	out     io.Writer
	logger  *slog.Logger
	targets Targets
	dryRun  bool
}

type Option func(*Synchronizer)

// WithOutput sets where progress lines are written.
func WithOutput(w io.Writer) Option {
	return func(s *Synchronizer) {
		s.out = w
	}
}

// WithDryRun makes [Synchronizer.Apply] stop after staging. Progress lines
// read "Would update" instead of "Updating".
func WithDryRun(dryRun bool) Option {
	return func(s *Synchronizer) {
		s.dryRun = dryRun
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Synchronizer) {
		s.logger = l
	}
}

func New(targets Targets, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		targets: targets,
		out:     io.Discard,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Targets returns the files this synchronizer operates on.
func (s *Synchronizer) Targets() Targets {
	return s.targets
}

// CurrentVersion reads the version declared in the manifest.
func (s *Synchronizer) CurrentVersion() (manifest.Version, error) {
	v, err := manifest.ReadFile(s.targets.Manifest)
	if err != nil {
		return manifest.Version{}, fmt.Errorf("read current version: %w", err)
	}

	s.logger.Debug("read current version",
		slog.String("path", s.targets.Manifest),
		slog.String("version", v.String()),
		slog.Int("line", v.Line),
	)

	return v, nil
}

// Stage computes the new content of every target without writing anything.
// Both files are read up front so that a missing file is reported before
// either one is touched. The build.gradle passes run in sequence, each over
// the output of the previous one.
func (s *Synchronizer) Stage(version string) (*Plan, error) {
	var merr error

	manifestData, err := fileutil.File.ReadFile(s.targets.Manifest)
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	gradleData, err := fileutil.File.ReadFile(s.targets.Gradle)
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return nil, fmt.Errorf("stage %s: %w", version, merr)
	}

	p := &Plan{
		logger: s.logger,
		order:  []string{s.targets.Manifest},
		files: map[string]*Change{
			s.targets.Manifest: {Path: s.targets.Manifest, Old: manifestData, New: manifestData},
		},
	}

	if _, ok := p.files[s.targets.Gradle]; !ok {
		p.order = append(p.order, s.targets.Gradle)
		p.files[s.targets.Gradle] = &Change{Path: s.targets.Gradle, Old: gradleData, New: gradleData}
	}

	s.pass(p, s.targets.Manifest, manifest.Rule(version))

	for _, rule := range gradle.Rules(version) {
		s.pass(p, s.targets.Gradle, rule)
	}

	return p, nil
}

// Apply stages version and commits it to disk. In dry-run mode nothing is
// written.
func (s *Synchronizer) Apply(version string) error {
	p, err := s.Stage(version)
	if err != nil {
		return err
	}

	if s.dryRun {
		return nil
	}

	return p.Commit()
}

// DryRun reports whether the synchronizer was built with [WithDryRun].
func (s *Synchronizer) DryRun() bool {
	return s.dryRun
}

func (s *Synchronizer) pass(p *Plan, path string, rule lineedit.Rule) {
	if s.dryRun {
		fmt.Fprintf(s.out, "Would update %s\n", path)
	} else {
		fmt.Fprintf(s.out, "Updating %s\n", path)
	}

	c := p.files[path]
	res := lineedit.Rewrite(c.New, rule)
	c.New = res.Content
	c.Matches += res.Matches

	p.passes = append(p.passes, Pass{Path: path, Needle: rule.Needle, Matches: res.Matches})

	s.logger.Debug("rewrite pass",
		slog.String("path", path),
		slog.String("needle", rule.Needle),
		slog.Int("matches", res.Matches),
	)

	if res.Matches == 0 {
		s.logger.Warn("no lines matched, file content unchanged",
			slog.String("path", path),
			slog.String("needle", rule.Needle),
		)
	}
}
