package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/wordroot/internal/langs"
	"codeberg.org/snonux/wordroot/japanese"
	"codeberg.org/snonux/wordroot/tokens"
	"codeberg.org/snonux/wordroot/wordfreq"
)

func newTokenizeCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize [text...]",
		Short: "Split text into the analyzer's tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := NewBackend(flags)
			if err != nil {
				return err
			}
			defer backend.Close()
			return forEachInput(args, flags, func(line string) error {
				toks, err := backend.TokenizeList(line)
				if err != nil {
					return err
				}
				fmt.Println(strings.Join(toks, " "))
				return nil
			})
		},
	}
}

func newUntokenizeCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "untokenize [text...]",
		Short: "Rejoin space-separated tokens into readable text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEachInput(args, flags, func(line string) error {
				fmt.Println(tokens.Untokenize(line))
				return nil
			})
		},
	}
}

func newNormalizeCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Reduce text to the roots of its content words",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := NewBackend(flags)
			if err != nil {
				return err
			}
			defer backend.Close()
			return forEachInput(args, flags, func(line string) error {
				normalized, err := backend.Normalize(line)
				if err != nil {
					return err
				}
				fmt.Println(normalized)
				return nil
			})
		},
	}
}

func newTagCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "tag [text...]",
		Short: "Print stem, tag, and token columns for each word",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := NewBackend(flags)
			if err != nil {
				return err
			}
			defer backend.Close()
			return forEachInput(args, flags, func(line string) error {
				triples, err := backend.TagAndStem(line)
				if err != nil {
					return err
				}
				for _, triple := range triples {
					fmt.Printf("%s\t%s\t%s\n", triple.Stem, triple.Tag, triple.Token)
				}
				return nil
			})
		},
	}
}

func newKanaCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "kana [text...]",
		Short: "Respell Japanese text phonetically in katakana",
		RunE: func(cmd *cobra.Command, args []string) error {
			tagger, err := newJapaneseTagger(cmd, flags)
			if err != nil {
				return err
			}
			defer tagger.Close()
			return forEachInput(args, flags, func(line string) error {
				kana, err := tagger.ToKana(line)
				if err != nil {
					return err
				}
				fmt.Println(kana)
				return nil
			})
		},
	}
}

func newRomanizeCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "romanize [text...]",
		Short: "Transliterate Japanese text to Hepburn romaji",
		RunE: func(cmd *cobra.Command, args []string) error {
			tagger, err := newJapaneseTagger(cmd, flags)
			if err != nil {
				return err
			}
			defer tagger.Close()
			return forEachInput(args, flags, func(line string) error {
				romaji, err := tagger.Romanize(line)
				if err != nil {
					return err
				}
				fmt.Println(romaji)
				return nil
			})
		},
	}
}

// newJapaneseTagger builds the tagger behind the kana and romanize
// subcommands, which are Japanese no matter what --lang defaults to.
func newJapaneseTagger(cmd *cobra.Command, flags *Flags) (*japanese.Tagger, error) {
	if cmd.Flags().Changed("lang") && flags.Lang != "ja" {
		return nil, fmt.Errorf("kana and romaji need Japanese text, not %s", flags.Lang)
	}
	analyzer, err := langs.NewJapaneseAnalyzer(backendConfig(flags))
	if err != nil {
		return nil, err
	}
	return japanese.NewTagger(analyzer), nil
}

func newFreqCommand(flags *Flags) *cobra.Command {
	var defaultFreq int64

	freqCmd := &cobra.Command{
		Use:   "freq [word]",
		Short: "Look up how frequent a word is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			freq, err := langs.LookupFrequency(flags.Lang, args[0], defaultFreq)
			if err != nil {
				return err
			}
			fmt.Println(freq)
			return nil
		},
	}
	freqCmd.Flags().Int64Var(&defaultFreq, "default", 0, "Frequency reported for words missing from the list")

	freqCmd.AddCommand(newFreqBuildCommand(flags), newFreqFetchCommand())
	return freqCmd
}

func newFreqBuildCommand(flags *Flags) *cobra.Command {
	var sqlitePath string

	buildCmd := &cobra.Command{
		Use:   "build <leeds-corpus> <wordlist>",
		Short: "Compile a Leeds internet-corpus file into a frequency wordlist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stem, err := langs.Stemmer(flags.Lang)
			if err != nil {
				return err
			}

			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open corpus file: %w", err)
			}
			defer in.Close()

			list, err := wordfreq.ReadLeedsCorpus(in, stem)
			if err != nil {
				return err
			}

			out, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("failed to create wordlist file: %w", err)
			}
			if err := list.Write(out); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}

			if sqlitePath != "" {
				if err := wordfreq.BuildDB(sqlitePath, list); err != nil {
					return err
				}
			}

			fmt.Fprintf(os.Stderr, "Wrote %d words to %s\n", list.Len(), args[1])
			return nil
		},
	}
	buildCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "Also compile the list into a SQLite database at this path")
	return buildCmd
}

func newFreqFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the default English wordlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher := wordfreq.NewFetcher()
			fetcher.Progress = os.Stderr
			path, err := fetcher.EnsureDefault(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}
