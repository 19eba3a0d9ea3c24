// Copyright Arbor Learning Co., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arborlearn/coursegraph/internal/graph"
	"github.com/arborlearn/coursegraph/internal/scrape"
	"github.com/arborlearn/coursegraph/internal/store"
	"github.com/arborlearn/coursegraph/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultDelay     = 500 * time.Millisecond
	defaultUserAgent = "coursegraph/0.1 (compatible; course graph builder)"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Scrape the OCW catalog and build the course graph",
	Long: `Fetch discovers course pages in the OCW catalog, downloads each course's
landing and syllabus pages, mines prerequisite and corequisite
relationships out of them, and saves the records to the local SQLite
index. It finishes by assembling and writing the graph document.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("base-url", "", "catalog root URL (default https://ocw.mit.edu)")
	fetchCmd.Flags().Int("max-courses", 0, "cap on courses to fetch (0 = all discovered)")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	fetchCmd.Flags().Duration("delay", 0, "delay between consecutive page fetches (default 500ms)")
	fetchCmd.Flags().Int("max-retries", 0, "retry attempts for rate-limited requests (default 4)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	baseURL, _ := cmd.Flags().GetString("base-url")
	if baseURL == "" {
		baseURL = viper.GetString("scrape.base_url")
	}
	maxCourses, _ := cmd.Flags().GetInt("max-courses")
	if maxCourses == 0 {
		maxCourses = viper.GetInt("scrape.max_courses")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("scrape.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = viper.GetDuration("scrape.request_delay")
	}
	if delay == 0 {
		delay = defaultDelay
	}
	maxRetries, _ := cmd.Flags().GetInt("max-retries")

	cfg := types.ScrapeConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		BaseURL:      baseURL,
		MaxCourses:   maxCourses,
		RequestDelay: delay,
		MaxRetries:   maxRetries,
	}

	st := store.New()
	scraper := scrape.New(cfg)
	if err := scraper.Run(ctx, st, os.Stdout); err != nil {
		return fmt.Errorf("scraping catalog: %w", err)
	}

	dir := dataDir(cmd)
	ix, err := store.OpenIndex(dir)
	if err != nil {
		return err
	}
	defer ix.Close()

	if err := ix.Save(ctx, st); err != nil {
		return fmt.Errorf("saving course index: %w", err)
	}
	fmt.Printf("indexed %d courses\n", st.Len())

	if _, err := store.ExportCatalog(dir, st); err != nil {
		return fmt.Errorf("exporting catalog: %w", err)
	}

	g := graph.Assemble(st)
	path, err := graph.WriteGraph(dir, g)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d nodes, %d edges)\n", path, len(g.Nodes), len(g.Edges))
	return nil
}
