// Command harpo splits, reconstructs, generates, and validates BIP-0039
// seed phrases under Shamir secret sharing. It is a thin shell over package
// harpo: argument parsing and text I/O only, no cryptographic logic of its
// own.
package main

import (
	"fmt"
	"os"

	"github.com/harpo-project/harpo/cmd/harpo/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// The root command silences cobra's own error and usage output, so
		// the usage/parse error is printed here; argument-parsing failure is
		// the only case that exits non-zero — every runtime library error is
		// reported as a diagnostic line instead.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
