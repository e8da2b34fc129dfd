package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harpo-project/harpo/harpo"
	"github.com/harpo-project/harpo/mnemonic"
)

func newValidateCommand(opts *options) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a seed phrase is BIP-0039 compliant",
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := readFirstLine(inputFile)
			if err != nil {
				printDiagnostic(cmd, err)
				return nil
			}

			phrase, err := mnemonic.ParsePhrase(line)
			if err != nil {
				printDiagnostic(cmd, parseError("parsing seed phrase", err))
				return nil
			}

			wl, err := opts.wordList()
			if err != nil {
				printDiagnostic(cmd, err)
				return nil
			}

			opts.log.Info().Msg("checking compliance")
			if err := harpo.ValidateWithList(phrase, wl); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "NOT valid")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "file to read the seed phrase from (default: stdin)")
	return cmd
}
