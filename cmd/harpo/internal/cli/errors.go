package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harpo-project/harpo/harpo"
)

// printDiagnostic prints the single stderr diagnostic line for a runtime
// error; the command itself still exits 0 (the CLI's RunE always returns
// nil after calling this).
func printDiagnostic(cmd *cobra.Command, err error) {
	fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
}

// ioError and parseError construct the CLI-only error kinds (Io, Parse);
// library functions never produce these themselves. invalidParameter wraps
// a rejected --word-list file in the InvalidParameter kind.
func ioError(msg string, err error) error {
	return &harpo.Error{Kind: harpo.KindIO, Msg: msg, Err: err}
}

func invalidParameter(msg string, err error) error {
	return &harpo.Error{Kind: harpo.KindInvalidParameter, Msg: msg, Err: err}
}

func parseError(msg string, err error) error {
	return &harpo.Error{Kind: harpo.KindParse, Msg: msg, Err: err}
}
