// Command runtests runs LICHEM's regression tests.
//
//	runtests <threads> all
//	runtests <threads> <qm> <mm> [dry]
//
// The exit status is always 0; results and configuration errors are
// reported on stdout.
package main

import (
	"os"

	"github.com/roach88/lichemtest/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
