// imagedup finds duplicate image files in a directory tree and reports
// the disk space wasted by redundant copies.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/imagedup/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Set via ldflags
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
