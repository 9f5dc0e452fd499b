package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "wordroot" {
		t.Errorf("Expected Use to be 'wordroot', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "tokenizer") {
		t.Errorf("Expected Short description to mention the tokenizer")
	}

	// Test that persistent flags are set up
	flagTests := []string{
		"config",
		"lang",
		"engine",
		"file",
		"mecab",
		"data-dir",
		"freeling-config",
	}

	for _, name := range flagTests {
		t.Run("flag_"+name, func(t *testing.T) {
			if cmd.PersistentFlags().Lookup(name) == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}

	// Test that subcommands are registered
	subcommands := []string{
		"tokenize",
		"untokenize",
		"normalize",
		"tag",
		"kana",
		"romanize",
		"freq",
	}

	for _, name := range subcommands {
		t.Run("subcommand_"+name, func(t *testing.T) {
			for _, sub := range cmd.Commands() {
				if sub.Name() == name {
					return
				}
			}
			t.Errorf("Expected subcommand %s to exist", name)
		})
	}
}

func TestFreqSubcommands(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	var freq *cobra.Command
	for _, sub := range cmd.Commands() {
		if sub.Name() == "freq" {
			freq = sub
		}
	}
	if freq == nil {
		t.Fatal("freq command not found")
	}

	for _, name := range []string{"build", "fetch"} {
		found := false
		for _, sub := range freq.Commands() {
			if sub.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected freq subcommand %s to exist", name)
		}
	}

	if freq.Flags().Lookup("default") == nil {
		t.Error("Expected freq flag default to exist")
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name    string
		cfgFile func(t *testing.T) string
	}{
		{
			name: "with config file",
			cfgFile: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `data:
  dir: /test/wordlists
freeling:
  config_dir: /test/freeling`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
		},
		{
			name:    "without config file",
			cfgFile: func(t *testing.T) string { return "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			InitConfig(tt.cfgFile(t))

			// Test environment variable prefix
			os.Setenv("WORDROOT_TEST_VAR", "test-value")
			defer os.Unsetenv("WORDROOT_TEST_VAR")

			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}
		})
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	// Reset viper
	viper.Reset()

	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Set some flag values
	cmd.PersistentFlags().Set("data-dir", "/test/wordlists")
	cmd.PersistentFlags().Set("freeling-config", "/test/freeling")

	bindFlagsToViper(cmd.PersistentFlags())

	// Test that values are bound
	if viper.GetString("data.dir") != "/test/wordlists" {
		t.Errorf("Expected data.dir to be /test/wordlists, got %s", viper.GetString("data.dir"))
	}

	if viper.GetString("freeling.config_dir") != "/test/freeling" {
		t.Errorf("Expected freeling.config_dir to be /test/freeling, got %s", viper.GetString("freeling.config_dir"))
	}
}
