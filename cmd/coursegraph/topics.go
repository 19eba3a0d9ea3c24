// Copyright Arbor Learning Co., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arborlearn/coursegraph/internal/topics"
	"github.com/arborlearn/coursegraph/pkg/types"
)

// topicsFileName is the curated thesis list artifact.
const topicsFileName = "thesis-topics.json"

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Curate PhD thesis topics from OpenAlex",
	Long: `Topics fetches the most-cited dissertations from the OpenAlex API,
reconstructs their abstracts, and assigns each thesis an Arbor college by
keyword scoring. The curated list is written as JSON.`,
	RunE: runTopics,
}

func init() {
	topicsCmd.Flags().Int("limit", 0, "number of theses to fetch (default 50)")
	topicsCmd.Flags().String("email", "", "contact email for the OpenAlex polite pool")
	topicsCmd.Flags().String("output", "", "output file (default <data-dir>/thesis-topics.json)")
	topicsCmd.Flags().Duration("delay", 0, "delay between OpenAlex pages (default 500ms)")

	rootCmd.AddCommand(topicsCmd)
}

func runTopics(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	limit, _ := cmd.Flags().GetInt("limit")
	if limit == 0 {
		limit = viper.GetInt("topics.limit")
	}
	email, _ := cmd.Flags().GetString("email")
	email = secretDefault("openalex-email", email)
	if email == "" {
		email = viper.GetString("topics.email")
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = viper.GetDuration("topics.request_delay")
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = viper.GetString("topics.output_path")
	}
	if output == "" {
		output = filepath.Join(dataDir(cmd), topicsFileName)
	}

	cfg := types.TopicsConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: defaultUserAgent,
		},
		Limit:        limit,
		Email:        email,
		RequestDelay: delay,
		OutputPath:   output,
	}

	client := topics.NewClient(cfg)
	theses, err := client.FetchTheses(ctx, os.Stdout)
	if err != nil {
		return fmt.Errorf("fetching theses: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	data, err := json.MarshalIndent(theses, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling theses: %w", err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Printf("wrote %d theses to %s\n", len(theses), output)
	return nil
}
