// Copyright Arbor Learning Co., 2026. All rights reserved.

package graph

import (
	"sort"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"

	"github.com/arborlearn/coursegraph/pkg/types"
)

// smallBucketLimit is the largest bucket whose member identifiers are
// listed in the report.
const smallBucketLimit = 10

// topListLimit caps the per-relation in-degree leader list.
const topListLimit = 5

// Analyze computes summary statistics over an assembled graph. It is a
// pure read-only pass: the graph is never mutated. An empty graph
// yields all-zero statistics.
func Analyze(g types.Graph) types.Statistics {
	stats := types.Statistics{
		TotalCourses:       len(g.Nodes),
		TotalEdges:         len(g.Edges),
		TotalPrerequisites: g.Metadata.TotalPrerequisites,
		TotalCorequisites:  g.Metadata.TotalCorequisites,
	}

	titles := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		titles[n.ID] = n.Title
	}

	stats.Departments = groupNodes(g.Nodes, func(n types.Node) string { return n.Department })
	stats.Levels = groupNodes(g.Nodes, func(n types.Node) string { return n.Level })

	stats.Prerequisites = inDegreeSummary(g, types.EdgePrerequisite, titles)
	stats.Corequisites = inDegreeSummary(g, types.EdgeCorequisite, titles)

	stats.EntryPoints, stats.EndPoints = connectivity(g)
	stats.MaxChainDepth = maxChainDepth(g, stats.EntryPoints)

	return stats
}

// groupNodes partitions nodes by a key, using "Unknown" for absent
// values. Buckets are ordered by descending count, then name, and list
// their members only while small enough to stay readable.
func groupNodes(nodes []types.Node, key func(types.Node) string) []types.BucketCount {
	counts := make(map[string]int)
	members := make(map[string][]string)
	for _, n := range nodes {
		k := key(n)
		if k == "" {
			k = "Unknown"
		}
		counts[k]++
		members[k] = append(members[k], n.ID)
	}

	buckets := make([]types.BucketCount, 0, len(counts))
	for name, count := range counts {
		b := types.BucketCount{Name: name, Count: count}
		if count <= smallBucketLimit {
			b.Members = members[name]
		}
		buckets = append(buckets, b)
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Name < buckets[j].Name
	})
	return buckets
}

// inDegreeSummary counts incoming edges of one kind per target course.
// The mean is taken over courses that have at least one incoming edge,
// so courses without any do not dilute it. The top list is stable: ties
// keep the order targets were first encountered in the edge list.
func inDegreeSummary(g types.Graph, kind types.EdgeKind, titles map[string]string) types.InDegreeSummary {
	counts := make(map[string]int)
	var order []string
	for _, e := range g.Edges {
		if e.Type != kind {
			continue
		}
		if _, seen := counts[e.Target]; !seen {
			order = append(order, e.Target)
		}
		counts[e.Target]++
	}

	summary := types.InDegreeSummary{
		WithIncoming:    len(counts),
		WithoutIncoming: len(g.Nodes) - len(counts),
	}
	if len(counts) == 0 {
		return summary
	}

	total := 0
	for _, c := range counts {
		total += c
		if c > summary.Max {
			summary.Max = c
		}
	}
	summary.Mean = float64(total) / float64(len(counts))

	entries := make([]types.DegreeEntry, 0, len(order))
	for _, id := range order {
		entries = append(entries, types.DegreeEntry{
			ID:    id,
			Title: titles[id],
			Count: counts[id],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > topListLimit {
		entries = entries[:topListLimit]
	}
	summary.Top = entries

	return summary
}

// connectivity returns the entry points (never an edge target) and end
// points (never an edge source), both in node-list order. Any edge kind
// counts: a course whose only incoming edge is a corequisite is not an
// entry point.
func connectivity(g types.Graph) (entries, ends []string) {
	targets := make(map[string]bool)
	sources := make(map[string]bool)
	for _, e := range g.Edges {
		targets[e.Target] = true
		sources[e.Source] = true
	}

	for _, n := range g.Nodes {
		if !targets[n.ID] {
			entries = append(entries, n.ID)
		}
		if !sources[n.ID] {
			ends = append(ends, n.ID)
		}
	}
	return entries, ends
}

// maxChainDepth reports the longest dependency chain, in edges,
// reachable from any entry point. The graph document is mirrored into a
// lvlath directed graph and walked breadth-first from each entry point.
func maxChainDepth(g types.Graph, entryPoints []string) int {
	if len(g.Nodes) == 0 || len(g.Edges) == 0 {
		return 0
	}

	lg := core.NewGraph(core.WithDirected(true))
	for _, n := range g.Nodes {
		if err := lg.AddVertex(n.ID); err != nil {
			continue
		}
	}
	for _, e := range g.Edges {
		if _, err := lg.AddEdge(e.Source, e.Target, 0); err != nil {
			continue
		}
	}

	maxDepth := 0
	for _, id := range entryPoints {
		res, err := bfs.BFS(lg, id)
		if err != nil {
			continue
		}
		for _, depth := range res.Depth {
			if depth > maxDepth {
				maxDepth = depth
			}
		}
	}
	return maxDepth
}
