package manifest_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/versync/pkg/lineedit"
	"github.com/MacroPower/versync/pkg/manifest"
	"github.com/MacroPower/versync/pkg/syncerrors"
)

const packageJSON = `{
  "name": "react-native-libmpv",
    "version": "1.2.3",
  "main": "index.js",
  "scripts": {
    "build": "tsc"
  }
}
`

func TestExtract(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err     error
		input   string
		wantRaw string
		want    string
		line    int
	}{
		"package manifest": {
			input:   packageJSON,
			wantRaw: `"1.2.3"`,
			want:    "1.2.3",
			line:    3,
		},
		"last match wins": {
			input:   "\"version\": \"1.0.0\",\n\"versionCode\": \"2.0.0\",\n",
			wantRaw: `"2.0.0"`,
			want:    "2.0.0",
			line:    2,
		},
		"unquoted value": {
			input:   "version: 3.1.4\n",
			wantRaw: "3.1.4",
			want:    "3.1.4",
			line:    1,
		},
		"value cut at second colon": {
			input:   `"version": "1.0.0:beta",` + "\n",
			wantRaw: `"1.0.0`,
			want:    "1.0.0",
			line:    1,
		},
		"crlf line endings": {
			input:   "{\r\n  \"version\": \"4.5.6\",\r\n}\r\n",
			wantRaw: `"4.5.6"`,
			want:    "4.5.6",
			line:    2,
		},
		"no version field": {
			input: "{\n  \"name\": \"x\"\n}\n",
			err:   syncerrors.ErrVersionNotFound,
		},
		"empty manifest": {
			input: "",
			err:   syncerrors.ErrVersionNotFound,
		},
		"version line without colon": {
			input: "version 1.0.0\n",
			err:   syncerrors.ErrMalformedVersion,
		},
		"earlier candidate without colon": {
			input: "{\n  // version pinned below\n  \"version\": \"1.0.0\",\n}\n",
			err:   syncerrors.ErrMalformedVersion,
			line:  2,
		},
		"empty value": {
			input:   "  \"version\": \"\",\n",
			wantRaw: `""`,
			want:    "",
			line:    1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := manifest.Extract(strings.NewReader(tc.input))
			if tc.err != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.err)

				if tc.line != 0 {
					assert.Contains(t, err.Error(), fmt.Sprintf("line %d:", tc.line))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantRaw, got.Raw)
			assert.Equal(t, tc.want, got.String())
			assert.Equal(t, tc.line, got.Line)
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(packageJSON), 0o600))

	v, err := manifest.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v.String())

	// Reading is pure.
	again, err := manifest.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, v, again)

	_, err = manifest.ReadFile(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, syncerrors.ErrFileNotFound)
}

func TestRule(t *testing.T) {
	t.Parallel()

	got := lineedit.Rewrite([]byte(packageJSON), manifest.Rule("9.9.9"))
	assert.Equal(t, 1, got.Matches)

	want := strings.Replace(packageJSON, `    "version": "1.2.3",`, `    "version": "9.9.9",`, 1)
	assert.Equal(t, want, string(got.Content))

	v, err := manifest.ExtractBytes(got.Content)
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", v.String())
}

func TestRule_Terminator(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		version string
		want    string
	}{
		"unterminated last line": {
			input:   "{\n  \"version\": \"1.0.0\",",
			version: "2.0.0",
			want:    "{\n    \"version\": \"2.0.0\",\n",
		},
		"crlf line": {
			input:   "{\r\n  \"version\": \"1.0.0\",\r\n}\r\n",
			version: "2.0.0",
			want:    "{\r\n    \"version\": \"2.0.0\",\n}\r\n",
		},
		"empty version": {
			input:   packageJSON,
			version: "",
			want:    strings.Replace(packageJSON, `    "version": "1.2.3",`, `    "version": "",`, 1),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := lineedit.Rewrite([]byte(tc.input), manifest.Rule(tc.version))
			assert.Equal(t, 1, got.Matches)
			assert.Equal(t, tc.want, string(got.Content))
		})
	}
}

func TestRule_RoundTrip(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		version string
		safe    bool
	}{
		"semver":         {version: "2.0.0", safe: true},
		"prerelease":     {version: "2.0.0-rc.1+build.5", safe: true},
		"free form":      {version: "nightly", safe: true},
		"contains comma": {version: "1,2", safe: false},
		"contains colon": {version: "1:2", safe: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := lineedit.Rewrite([]byte(packageJSON), manifest.Rule(tc.version))

			v, err := manifest.ExtractBytes(got.Content)
			require.NoError(t, err)

			if tc.safe {
				assert.Equal(t, tc.version, v.String())
			} else {
				assert.NotEqual(t, tc.version, v.String())
			}
		})
	}
}
