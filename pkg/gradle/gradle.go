// Package gradle builds the rewrite rules for an Android build.gradle file.
package gradle

import (
	"fmt"

	"github.com/MacroPower/versync/pkg/lineedit"
)

const (
	VersionNeedle     = "version = "
	VersionNameNeedle = "versionName"
)

// VersionRule replaces the top-level `version = ...` assignment. The
// replacement has no line terminator, so it is joined with the line that
// follows it; on a typical build.gradle that line is blank and drops out.
func VersionRule(version string) lineedit.Rule {
	return lineedit.Rule{
		Needle:      VersionNeedle,
		Replacement: fmt.Sprintf("version = '%s'", version),
	}
}

// VersionNameRule replaces the `versionName` field of defaultConfig,
// terminated with "\n".
func VersionNameRule(version string) lineedit.Rule {
	return lineedit.Rule{
		Needle:      VersionNameNeedle,
		Replacement: fmt.Sprintf("        versionName \"%s\"\n", version),
	}
}

// Rules returns the build.gradle rules in the order their passes run. Each
// rule is meant for its own [lineedit.Rewrite] pass.
func Rules(version string) []lineedit.Rule {
	return []lineedit.Rule{
		VersionRule(version),
		VersionNameRule(version),
	}
}
