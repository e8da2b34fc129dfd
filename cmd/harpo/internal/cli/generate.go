package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harpo-project/harpo/harpo"
)

func newGenerateCommand(opts *options) *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print one fresh, compliant seed phrase of the given length",
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := opts.wordList()
			if err != nil {
				printDiagnostic(cmd, err)
				return nil
			}

			opts.log.Info().Int("length", length).Msg("sampling fresh seed phrase")
			phrase, err := harpo.GenerateWithList(length, wl)
			if err != nil {
				printDiagnostic(cmd, err)
				return nil
			}
			opts.log.Info().Msg("generation complete")

			fmt.Fprintln(cmd.OutOrStdout(), phrase.String())
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 12, "seed phrase length in words (12, 15, 18, 21, or 24)")
	return cmd
}
