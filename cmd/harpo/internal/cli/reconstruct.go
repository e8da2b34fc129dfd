package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harpo-project/harpo/harpo"
	"github.com/harpo-project/harpo/mnemonic"
)

func newReconstructCommand(opts *options) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "Combine share phrases back into the original seed phrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.log.Info().Msg("reading share phrases")
			lines, err := readLines(inputFile)
			if err != nil {
				printDiagnostic(cmd, err)
				return nil
			}

			phrases := make([]mnemonic.Phrase, 0, len(lines))
			for _, line := range lines {
				p, err := mnemonic.ParsePhrase(line)
				if err != nil {
					printDiagnostic(cmd, parseError("parsing share phrase", err))
					return nil
				}
				phrases = append(phrases, p)
			}

			wl, err := opts.wordList()
			if err != nil {
				printDiagnostic(cmd, err)
				return nil
			}

			opts.log.Info().Int("shares", len(phrases)).Msg("reconstructing seed phrase")
			recovered, err := harpo.ReconstructWithList(phrases, wl)
			if err != nil {
				printDiagnostic(cmd, err)
				return nil
			}
			opts.log.Info().Msg("reconstruction complete")

			fmt.Fprintln(cmd.OutOrStdout(), recovered.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "file to read share phrases from (default: stdin, blank line ends input)")
	return cmd
}
