package lineedit

import (
	"bytes"
	"strings"
)

// Rule replaces every line containing Needle with Replacement. The
// replacement stands in for the whole line, terminator included, so it
// carries its own "\n" when the next line must stay separate.
type Rule struct {
	Needle      string
	Replacement string
}

// Matches reports whether the rule applies to the given line.
func (r Rule) Matches(line string) bool {
	return r.Needle != "" && strings.Contains(line, r.Needle)
}

// Result is the outcome of a [Rewrite] pass.
type Result struct {
	Content []byte
	Matches int
}

// Rewrite performs a single full pass over content. For each line, the first
// matching rule replaces the line and its terminator with the rule's
// Replacement, written verbatim. Lines that no rule matches are copied
// unchanged.
func Rewrite(content []byte, rules ...Rule) Result {
	var (
		buf     bytes.Buffer
		matches int
	)

	buf.Grow(len(content))

	for _, line := range SplitLines(content) {
		replaced := false

		for _, r := range rules {
			if r.Matches(line) {
				buf.WriteString(r.Replacement)

				matches++
				replaced = true

				break
			}
		}

		if !replaced {
			buf.WriteString(line)
		}
	}

	return Result{Content: buf.Bytes(), Matches: matches}
}

// SplitLines splits content after each "\n", keeping terminators attached.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	lines := strings.SplitAfter(string(content), "\n")

	// SplitAfter yields a trailing empty element when content ends in "\n".
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
