// Copyright Arbor Learning Co., 2026. All rights reserved.

// Package main is the entry point for the coursegraph CLI.
// See docs/ARCHITECTURE.md § Pipeline Interface, § Project Structure.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arborlearn/coursegraph/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultDataDir is the base directory for generated artifacts
// (SQLite index, graph JSON, thesis topics).
const defaultDataDir = "data"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value
// for key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the coursegraph CLI.
var rootCmd = &cobra.Command{
	Use:   "coursegraph",
	Short: "Build and analyze the MIT OCW course prerequisite graph",
	Long: `coursegraph scrapes the MIT OpenCourseWare catalog, mines prerequisite and
corequisite relationships out of course pages, and assembles them into a
directed course graph.

Each pipeline stage is a subcommand: fetch scrapes the catalog and writes
the graph, graph rebuilds the graph from the local index without
re-scraping, stats analyzes a graph document, topics curates PhD thesis
metadata from OpenAlex, and publish uploads artifacts to the frontend
host.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./coursegraph.yaml or ~/.config/coursegraph/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", defaultDataDir, "base directory for generated artifacts")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("coursegraph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "coursegraph"))
		}
	}

	viper.SetEnvPrefix("COURSEGRAPH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// dataDir resolves the artifact directory: flag first, then config file.
func dataDir(cmd *cobra.Command) string {
	dir, _ := cmd.Root().PersistentFlags().GetString("data-dir")
	if dir != defaultDataDir && dir != "" {
		return dir
	}
	if v := viper.GetString("graph.data_dir"); v != "" {
		return v
	}
	return defaultDataDir
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
