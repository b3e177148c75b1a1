package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/MacroPower/versync/pkg/config"
	"github.com/MacroPower/versync/pkg/diffview"
	"github.com/MacroPower/versync/pkg/log"
	"github.com/MacroPower/versync/pkg/paths"
	"github.com/MacroPower/versync/pkg/syncerrors"
	"github.com/MacroPower/versync/pkg/version"
	"github.com/MacroPower/versync/pkg/versync"
)

// ReadArg is the positional argument that prints the current version.
const ReadArg = "read"

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrInvalidArgument  = errors.New("invalid argument")

	// ErrUsage is returned when no version was given. The usage message has
	// already been printed, so callers should only set the exit status.
	ErrUsage = errors.New("missing version argument")
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name + " [read | <new-version>]",
		Short:         shortDesc,
		Long:          longDesc,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.GetVersionString(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")

	cmd.Flags().StringVarP(args.dir, "dir", "C", ".", "Base directory that relative paths resolve against")
	cmd.Flags().BoolVar(args.findRoot, "find_root", false, "Use the git repository root enclosing --dir as the base directory")
	cmd.Flags().StringVar(args.configFile, "config", "", "Config file (default \"<dir>/"+config.DefaultFile+"\" if present)")
	cmd.Flags().StringVar(args.manifest, "manifest", "", "Package manifest path (default \""+versync.DefaultManifestPath+"\")")
	cmd.Flags().StringVar(args.gradle, "gradle", "", "Android build.gradle path (default \""+versync.DefaultGradlePath+"\")")
	cmd.Flags().BoolVar(args.dryRun, "dry_run", false, "Print a diff of the changes instead of writing them")
	cmd.Flags().StringVar(args.color, "color", colorAuto, "Colorize the dry run diff (auto, always, never)")

	err := cmd.MarkFlagDirname("dir")
	if err != nil {
		panic(err)
	}

	for _, f := range []string{"config", "manifest", "gradle"} {
		err = cmd.MarkFlagFilename(f)
		if err != nil {
			panic(err)
		}
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandlerWithStrings(
			cc.ErrOrStderr(),
			args.GetLogLevel(),
			args.GetLogFormat(),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go")

		return nil
	}

	cmd.RunE = func(cc *cobra.Command, posArgs []string) error {
		targets, err := resolveTargets(args)
		if err != nil {
			return err
		}

		out := cc.OutOrStdout()
		s := versync.New(targets,
			versync.WithOutput(out),
			versync.WithLogger(slog.Default()),
			versync.WithDryRun(args.GetDryRun()),
		)

		current, err := s.CurrentVersion()

		switch {
		case len(posArgs) == 0:
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Pass a new version. Current version is %s\n", current)

			return ErrUsage

		case posArgs[0] == ReadArg:
			if err != nil {
				return err
			}

			fmt.Fprint(out, current.String())

			return nil
		}

		// The current version is informational when applying; a manifest
		// without a version field is the only read failure that does not stop
		// the run.
		if err != nil {
			if !errors.Is(err, syncerrors.ErrVersionNotFound) {
				return err
			}

			slog.Warn("could not determine current version", slog.Any("err", err))
		}

		return apply(s, posArgs[0], args, out)
	}

	return cmd
}

func apply(s *versync.Synchronizer, newVersion string, args *RootArgs, out io.Writer) error {
	slog.Info("applying version", slog.String("version", newVersion))

	p, err := s.Stage(newVersion)
	if err != nil {
		return err
	}

	if !s.DryRun() {
		return p.Commit()
	}

	color, err := useColor(args.GetColor(), out)
	if err != nil {
		return err
	}

	for _, c := range p.Changes() {
		diff, err := diffview.Unified(filepath.ToSlash(filepath.Clean(c.Path)), string(c.Old), string(c.New))
		if err != nil {
			return err
		}

		if err := diffview.Render(out, diff, color); err != nil {
			return err
		}
	}

	return nil
}

func resolveTargets(args *RootArgs) (versync.Targets, error) {
	baseDir := args.GetDir()

	if args.GetFindRoot() {
		root, err := paths.FindRepoRoot(baseDir)
		if err != nil {
			return versync.Targets{}, fmt.Errorf("find repository root: %w", err)
		}

		baseDir = root
	}

	configFile := args.GetConfigFile()
	mustExist := configFile != ""

	if !mustExist {
		configFile = filepath.Join(baseDir, config.DefaultFile)
	}

	cfg, err := config.Load(configFile, mustExist)
	if err != nil {
		return versync.Targets{}, err
	}

	cfg = cfg.Override(config.Config{
		Manifest: args.GetManifest(),
		Gradle:   args.GetGradle(),
	})

	targets := cfg.Resolve(baseDir)

	slog.Debug("resolved targets",
		slog.String("base_dir", baseDir),
		slog.String("manifest", targets.Manifest),
		slog.String("gradle", targets.Gradle),
	)

	return targets, nil
}

func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto:
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}

		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	}

	return false, fmt.Errorf("%w: --color must be one of %s, %s, %s", ErrInvalidArgument, colorAuto, colorAlways, colorNever)
}
