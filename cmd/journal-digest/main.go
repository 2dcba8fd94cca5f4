// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the journal-digest CLI. It fetches the
// latest articles of a journal from Crossref and prints each one in a
// fixed-width frame.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/journal-digest/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// logger writes diagnostics to stderr; stdout carries only results.
	logger = newLogger(os.Stderr, false)

	// loadedSecrets holds values read from .secrets/ at startup.
	loadedSecrets secrets.Secrets
)

// rootCmd fetches and prints the digest.
var rootCmd = &cobra.Command{
	Use:   "journal-digest [search term]",
	Short: "Show the latest articles of a journal in the terminal",
	Long: `journal-digest asks the Crossref API for the most recent articles of one
journal (by ISSN) and prints each article's date, title, URL and abstract
inside a fixed-width frame. An optional search term narrows the results.

Results can also be written as JSON or YAML (--format) and rendered again
later from such a file (--input) without querying the API.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = newLogger(os.Stderr, verbose)
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", "path", f)
		}

		s, err := secrets.Load(secrets.Dir, logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
	RunE: runDigest,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./journal-digest.yaml or ~/.config/journal-digest/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug details to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("journal-digest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "journal-digest"))
		}
	}

	viper.SetEnvPrefix("JOURNAL_DIGEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Warn("could not read config file", "err", err)
		}
	}
}

// newLogger returns a text logger at Info level, or Debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
