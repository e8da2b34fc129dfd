// Package cli wires package harpo to a cobra command tree. It owns argument
// parsing, file/stdin text I/O, and diagnostic printing; all cryptographic
// logic lives in package harpo.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/harpo-project/harpo/wordlists"
)

// options holds the global flag values shared by every subcommand: the
// --verbose (-v) and --word-list (-w) persistent flags.
type options struct {
	verbose      bool
	wordListPath string
	log          zerolog.Logger
}

// wordList resolves the active word list: the default English list, or, if
// --word-list was given, the parsed contents of that file.
func (o *options) wordList() (wordlists.List, error) {
	if o.wordListPath == "" {
		return wordlists.English, nil
	}
	contents, err := os.ReadFile(o.wordListPath)
	if err != nil {
		return wordlists.List{}, ioError("reading word list file", err)
	}
	wl, err := wordlists.ParseFile(string(contents))
	if err != nil {
		return wordlists.List{}, invalidParameter("parsing word list file", err)
	}
	return wl, nil
}

// NewRootCommand builds the harpo command tree: create, reconstruct,
// generate, validate, under the --verbose/--word-list persistent flags.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "harpo",
		Short:         "Split, reconstruct, generate, and validate BIP-0039 seed phrases via Shamir secret sharing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.Disabled
			if opts.verbose {
				level = zerolog.InfoLevel
			}
			opts.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
				Level(level).
				With().Timestamp().Logger()
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "emit progress lines to stderr")
	root.PersistentFlags().StringVarP(&opts.wordListPath, "word-list", "w", "", "path to a custom 2048-word list file")

	root.AddCommand(newCreateCommand(opts))
	root.AddCommand(newReconstructCommand(opts))
	root.AddCommand(newGenerateCommand(opts))
	root.AddCommand(newValidateCommand(opts))
	return root
}
