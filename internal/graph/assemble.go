// Copyright Arbor Learning Co., 2026. All rights reserved.

// Package graph assembles the course graph document and computes
// read-only analytics over it. See docs/ARCHITECTURE.md § Graph.
package graph

import (
	"fmt"

	"github.com/arborlearn/coursegraph/internal/store"
	"github.com/arborlearn/coursegraph/pkg/types"
)

// Assemble converts the course store into a graph document: one node per
// record, one edge per relation reference whose endpoints both exist in
// the store. References to courses that were never fetched are dropped
// silently; they are unresolved references, not failures. Edge order is
// deterministic given the store's iteration order: all prerequisite
// edges first, then all corequisite edges.
//
// The metadata counters sum the raw relation lists, so they include
// references that produced no edge, matching the node-level data the
// frontend reads.
func Assemble(s *store.Store) types.Graph {
	courses := s.All()

	g := types.Graph{
		Nodes: make([]types.Node, 0, len(courses)),
		Edges: []types.Edge{},
	}

	for _, c := range courses {
		g.Nodes = append(g.Nodes, types.Node{
			ID:          c.ID,
			Label:       fmt.Sprintf("%s: %s", c.ID, c.Title),
			Title:       c.Title,
			URL:         c.URL,
			Department:  c.Department,
			Level:       c.Level,
			Description: c.Description,
		})
		g.Metadata.TotalPrerequisites += len(c.Prerequisites)
		g.Metadata.TotalCorequisites += len(c.Corequisites)
	}
	g.Metadata.TotalCourses = len(courses)

	for _, c := range courses {
		for _, prereqID := range c.Prerequisites {
			if s.Has(prereqID) {
				g.Edges = append(g.Edges, types.Edge{
					Source: prereqID,
					Target: c.ID,
					Type:   types.EdgePrerequisite,
					Label:  string(types.EdgePrerequisite),
				})
			}
		}
	}

	for _, c := range courses {
		for _, coreqID := range c.Corequisites {
			if s.Has(coreqID) {
				g.Edges = append(g.Edges, types.Edge{
					Source: coreqID,
					Target: c.ID,
					Type:   types.EdgeCorequisite,
					Label:  string(types.EdgeCorequisite),
				})
			}
		}
	}

	return g
}
