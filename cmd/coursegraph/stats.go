// Copyright Arbor Learning Co., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arborlearn/coursegraph/internal/graph"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Analyze a course graph document",
	Long: `Stats reads a graph document and reports department and level
distributions, prerequisite and corequisite in-degree analysis, and
connectivity (entry points, end points, longest dependency chain).`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().String("graph", "", "graph document to analyze (default <data-dir>/course-graph.json)")
	statsCmd.Flags().Bool("json", false, "output statistics as JSON")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("graph")
	if path == "" {
		path = filepath.Join(dataDir(cmd), graph.GraphFileName)
	}

	g, err := graph.LoadGraphFile(path)
	if err != nil {
		return err
	}

	stats := graph.Analyze(g)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return graph.FormatStatisticsJSON(stats, os.Stdout)
	}
	graph.FormatStatistics(stats, os.Stdout)
	return nil
}
