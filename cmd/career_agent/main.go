// Package main provides the entry point for the career agent CLI and HTTP API server.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-agent/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Career Agent HTTP API Server and CLI",
	Long:  "Career Agent manages resume intake, rule-based resume enhancement, styled document export, and job search over a curated posting catalog, via REST API or directly from the command line.",
}

var (
	configPath string
	verbose    bool
	log        zerolog.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed output")
}

// loadConfig merges the optional config file with the environment. Flags on
// individual commands override both.
func loadConfig() (config.Config, error) {
	cfg := config.FromEnv()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	} else {
		cfg = cfg.MergeWithDefaults(config.Config{})
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)

	cobra.OnInitialize(func() {
		if verbose {
			log = log.Level(zerolog.DebugLevel)
		}
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
