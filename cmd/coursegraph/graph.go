// Copyright Arbor Learning Co., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arborlearn/coursegraph/internal/graph"
	"github.com/arborlearn/coursegraph/internal/store"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Rebuild the graph document from the local course index",
	Long: `Graph assembles the course graph from records already saved in the local
SQLite index and writes the graph document, without re-scraping the
catalog. Run fetch first to populate the index.`,
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dir := dataDir(cmd)

	ix, err := store.OpenIndex(dir)
	if err != nil {
		return err
	}
	defer ix.Close()

	st, err := ix.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading course index: %w", err)
	}
	if st.Len() == 0 {
		return fmt.Errorf("course index is empty, run fetch first")
	}

	g := graph.Assemble(st)
	path, err := graph.WriteGraph(dir, g)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d nodes, %d edges)\n", path, len(g.Nodes), len(g.Edges))
	return nil
}
