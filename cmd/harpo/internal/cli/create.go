package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harpo-project/harpo/harpo"
	"github.com/harpo-project/harpo/mnemonic"
)

func newCreateCommand(opts *options) *cobra.Command {
	var (
		numShares   int
		threshold   int
		noEmbedding bool
		inputFile   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Split a seed phrase into N share phrases, any T of which reconstruct it",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.log.Info().Msg("reading input seed phrase")
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

			opts.log.Info().Int("threshold", threshold).Int("shares", numShares).Msg("splitting seed phrase")
			shares, err := harpo.CreateWithList(phrase, threshold, numShares, !noEmbedding, wl)
			if err != nil {
				printDiagnostic(cmd, err)
				return nil
			}
			opts.log.Info().Msg("split complete")

			for _, p := range shares {
				fmt.Fprintln(cmd.OutOrStdout(), p.String())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&numShares, "num-shares", "n", 0, "total number of shares to produce")
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "number of shares required to reconstruct")
	cmd.Flags().BoolVarP(&noEmbedding, "no-embedding", "N", false, "do not embed the share index in the checksum byte")
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "file to read the seed phrase from (default: stdin)")
	cmd.MarkFlagRequired("num-shares")
	cmd.MarkFlagRequired("threshold")
	return cmd
}
