// Package versync keeps the version of a package manifest and an Android
// build.gradle file in sync.
//
// A [Synchronizer] reads the current version from the manifest, and stages a
// new one as a [Plan]: the manifest's "version" line is rewritten, then the
// build.gradle file gets two passes, one for its `version = ` assignment and
// one for `versionName`. Nothing touches the disk until [Plan.Commit].
package versync
