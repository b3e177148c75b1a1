package versync

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/MacroPower/versync/pkg/fileutil"
)

// Change is the staged content of a single file.
type Change struct {
	Path    string
	Old     []byte
	New     []byte
	Matches int
}

// Modified reports whether the staged content differs from what was read.
func (c Change) Modified() bool {
	return !bytes.Equal(c.Old, c.New)
}

// Pass records a single rewrite pass over a file.
type Pass struct {
	Path    string
	Needle  string
	Matches int
}

// Plan holds staged changes that have not been written yet.
type Plan struct {
	logger *slog.Logger
	files  map[string]*Change
	order  []string
	passes []Pass
}

// Changes returns one entry per file, in commit order.
func (p *Plan) Changes() []Change {
	changes := make([]Change, 0, len(p.order))
	for _, path := range p.order {
		changes = append(changes, *p.files[path])
	}

	return changes
}

// Passes returns the rewrite passes in the order they ran.
func (p *Plan) Passes() []Pass {
	return append([]Pass(nil), p.passes...)
}

// Commit writes every staged file, manifest first. Each file is replaced
// atomically, but a failure on a later file does not undo earlier ones.
// Files are written even when unchanged.
func (p *Plan) Commit() error {
	for _, path := range p.order {
		c := p.files[path]

		if err := fileutil.File.WriteFileAtomic(path, c.New); err != nil {
			return fmt.Errorf("commit: %w", err)
		}

		p.logger.Debug("wrote file",
			slog.String("path", path),
			slog.Int("bytes", len(c.New)),
			slog.Bool("modified", c.Modified()),
		)
	}

	return nil
}
