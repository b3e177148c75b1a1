package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/versync/cmd/versync/commands"
)

const (
	cmdName = "versync"

	shortDesc = "Keep package.json and build.gradle versions in sync."
	longDesc  = `Versync keeps the version of a React Native package in sync between its
package manifest (package.json) and its Android build configuration
(android/build.gradle).

With no arguments it prints the current version and exits with status 1.
With "read" it prints only the current version, without a trailing newline.
Any other argument is applied as the new version to both files.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, commands.ErrUsage) {
			fmt.Fprintln(os.Stderr, "Error: "+strings.TrimLeft(err.Error(), "\n"))
		}

		os.Exit(1)
	}
}
