package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordroot/internal"
	"codeberg.org/snonux/wordroot/wordfreq"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordroot",
		Short: "Multilingual tokenizer, stemmer, and tagger",
		Long: `wordroot turns raw text into tokens, word roots, and part-of-speech
tags.

English is analyzed with a built-in dictionary, Japanese with either a
bundled dictionary or an installed mecab command, and Spanish, French,
Russian, and Swedish with snowball stemmers. Languages an installed
FreeLing analyzer covers can be handled with --engine freeling.

Examples:
  wordroot normalize "the big dogs"              # big dog
  wordroot --lang ja romanize これはテストです    # kore wa tesuto desu
  wordroot --lang es normalize "esta es una prueba"
  wordroot freq fetch && wordroot freq dog`,
		Version: internal.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if dir := viper.GetString("data.dir"); dir != "" {
				wordfreq.DataDir = dir
			}
		},
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(
		newTokenizeCommand(flags),
		newUntokenizeCommand(flags),
		newNormalizeCommand(flags),
		newTagCommand(flags),
		newKanaCommand(flags),
		newRomanizeCommand(flags),
		newFreqCommand(flags),
	)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordroot.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.Lang, "lang", "l", flags.Lang, "ISO code of the language to analyze")
	cmd.PersistentFlags().StringVar(&flags.Engine, "engine", "", "Analyzer engine override (freeling)")
	cmd.PersistentFlags().StringVarP(&flags.File, "file", "f", "", "Read input lines from a file instead of arguments")
	cmd.PersistentFlags().BoolVar(&flags.MeCab, "mecab", false, "Analyze Japanese with the mecab command instead of the bundled dictionary")
	cmd.PersistentFlags().StringVar(&flags.DataDir, "data-dir", "", "Directory holding frequency wordlists")
	cmd.PersistentFlags().StringVar(&flags.FreeLingDir, "freeling-config", "", "Directory holding FreeLing .cfg files")

	// Bind flags to viper
	bindFlagsToViper(cmd.PersistentFlags())
}

func bindFlagsToViper(flags *pflag.FlagSet) {
	viper.BindPFlag("data.dir", flags.Lookup("data-dir"))
	viper.BindPFlag("freeling.config_dir", flags.Lookup("freeling-config"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wordroot" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordroot")
	}

	// Environment variables
	viper.SetEnvPrefix("WORDROOT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
