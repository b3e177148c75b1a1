package diffview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pmezard/go-difflib/difflib"
)

const contextLines = 3

type styles struct {
	header  lipgloss.Style
	hunk    lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return styles{
		header:  base.Bold(true),
		hunk:    base.Foreground(lipgloss.Color("63")),
		added:   base.Foreground(lipgloss.Color("42")),
		removed: base.Foreground(lipgloss.Color("196")),
	}
}

// Unified returns a unified diff between the old and new content of path.
// It returns an empty string when the contents are equal.
func Unified(path, oldContent, newContent string) (string, error) {
	if oldContent == newContent {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldContent),
		B:        difflib.SplitLines(newContent),
		FromFile: "a/" + strings.TrimPrefix(path, "/"),
		ToFile:   "b/" + strings.TrimPrefix(path, "/"),
		Context:  contextLines,
	})
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", path, err)
	}

	return diff, nil
}

// Render writes diff to w. When color is false, no escape sequences are
// emitted regardless of what w is.
func Render(w io.Writer, diff string, color bool) error {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	s := newStyles(r)

	var b strings.Builder

	for line := range strings.Lines(diff) {
		body := strings.TrimSuffix(line, "\n")

		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			body = s.header.Render(body)
		case strings.HasPrefix(body, "@@"):
			body = s.hunk.Render(body)
		case strings.HasPrefix(body, "+"):
			body = s.added.Render(body)
		case strings.HasPrefix(body, "-"):
			body = s.removed.Render(body)
		}

		b.WriteString(body)
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write diff: %w", err)
	}

	return nil
}
