package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/MacroPower/versync/pkg/fileutil"
	"github.com/MacroPower/versync/pkg/lineedit"
	"github.com/MacroPower/versync/pkg/syncerrors"
)

const (
	// ReadNeedle selects the version declaration when reading.
	ReadNeedle = "version"

	// WriteNeedle selects the lines replaced when applying a new version.
	WriteNeedle = `"version"`
)

// Version is the version token read from a manifest.
type Version struct {
	// Raw is the token as it appears in the manifest, quotes included.
	Raw string
	// Line is the 1-based line number of the declaration.
	Line int
}

// String returns the version with all double quotes removed.
func (v Version) String() string {
	return strings.ReplaceAll(v.Raw, `"`, "")
}

// Extract scans r for the version declaration. Every line containing
// [ReadNeedle] is parsed and the last one wins; a candidate without a ':'
// fails the scan at that line. The value is the text of the second
// ':'-separated field, cut at its first ',', with surrounding whitespace
// trimmed.
func Extract(r io.Reader) (Version, error) {
	var (
		v     Version
		found bool
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for scanner.Scan() {
		n++

		line := scanner.Text()
		if !strings.Contains(line, ReadNeedle) {
			continue
		}

		raw, err := parseLine(line)
		if err != nil {
			return Version{}, fmt.Errorf("line %d: %w", n, err)
		}

		found = true
		v = Version{Raw: raw, Line: n}
	}

	if err := scanner.Err(); err != nil {
		return Version{}, fmt.Errorf("%w: %w", syncerrors.ErrRead, err)
	}

	if !found {
		return Version{}, syncerrors.ErrVersionNotFound
	}

	return v, nil
}

// ExtractBytes is [Extract] over an in-memory manifest.
func ExtractBytes(content []byte) (Version, error) {
	return Extract(bytes.NewReader(content))
}

// ReadFile extracts the version from the manifest at path.
func ReadFile(path string) (Version, error) {
	data, err := fileutil.File.ReadFile(path)
	if err != nil {
		return Version{}, err
	}

	v, err := ExtractBytes(data)
	if err != nil {
		return Version{}, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// Rule returns the rewrite rule that sets the manifest version. The
// replacement always ends in "\n".
func Rule(version string) lineedit.Rule {
	return lineedit.Rule{
		Needle:      WriteNeedle,
		Replacement: fmt.Sprintf("    \"version\": \"%s\",\n", version),
	}
}

func parseLine(line string) (string, error) {
	_, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", fmt.Errorf("%w: missing ':' in %q", syncerrors.ErrMalformedVersion, line)
	}

	value, _, _ = strings.Cut(value, ":")
	value, _, _ = strings.Cut(value, ",")

	return strings.TrimSpace(value), nil
}
