package cli

import (
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordroot/internal/langs"
)

// NewBackend picks the analysis backend the flags and configuration
// ask for.
func NewBackend(flags *Flags) (langs.Backend, error) {
	return langs.New(flags.Lang, flags.Engine, backendConfig(flags))
}

// backendConfig assembles the machine-local backend settings from the
// flags and whatever viper picked up from the config file and
// environment.
func backendConfig(flags *Flags) langs.Config {
	cfg := langs.Config{
		MeCab:          flags.MeCab,
		FreeLingPath:   viper.GetString("freeling.path"),
		FreeLingConfig: freelingConfigDir(flags),
	}
	if path := viper.GetString("mecab.path"); path != "" {
		cfg.MeCabCommand = append([]string{path}, viper.GetStringSlice("mecab.args")...)
	}
	return cfg
}

func freelingConfigDir(flags *Flags) string {
	if flags.FreeLingDir != "" {
		return flags.FreeLingDir
	}
	return viper.GetString("freeling.config_dir")
}
