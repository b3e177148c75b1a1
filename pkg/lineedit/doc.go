// Package lineedit rewrites text one line at a time.
//
// A [Rule] names a substring to look for and the text that replaces any line
// containing it. [Rewrite] applies rules over a whole buffer in a single pass
// and leaves every other byte untouched.
package lineedit
