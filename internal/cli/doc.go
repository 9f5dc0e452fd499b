// Package cli provides command-line interface setup and configuration
// for the wordroot tool. It handles flag parsing, command creation,
// input reading, and configuration management using cobra and viper,
// and picks the language backend the text subcommands run against.
package cli
