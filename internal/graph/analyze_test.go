// Copyright Arbor Learning Co., 2026. All rights reserved.

package graph

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlearn/coursegraph/pkg/types"
)

// chainGraph builds the sample five-course graph used across the
// analyzer tests: 18.01 -> 18.02, and 6.042 -> 6.006 -> 6.046.
func chainGraph() types.Graph {
	s := buildStore(
		types.Course{ID: "18.01", Title: "Single Variable Calculus", Department: "Mathematics", Level: "Undergraduate"},
		types.Course{ID: "18.02", Title: "Multivariable Calculus", Department: "Mathematics", Level: "Undergraduate",
			Prerequisites: []string{"18.01"}},
		types.Course{ID: "6.042", Title: "Mathematics for Computer Science", Department: "EECS", Level: "Undergraduate"},
		types.Course{ID: "6.006", Title: "Introduction to Algorithms", Department: "EECS", Level: "Undergraduate",
			Prerequisites: []string{"6.042"}},
		types.Course{ID: "6.046", Title: "Design and Analysis of Algorithms", Department: "EECS", Level: "Undergraduate",
			Prerequisites: []string{"6.006"}},
	)
	return Assemble(s)
}

func TestAnalyzeTotals(t *testing.T) {
	stats := Analyze(chainGraph())

	assert.Equal(t, 5, stats.TotalCourses)
	assert.Equal(t, 3, stats.TotalEdges)
	assert.Equal(t, 3, stats.TotalPrerequisites)
	assert.Equal(t, 0, stats.TotalCorequisites)
}

func TestAnalyzeBuckets(t *testing.T) {
	stats := Analyze(chainGraph())

	require.Len(t, stats.Departments, 2)
	assert.Equal(t, "EECS", stats.Departments[0].Name)
	assert.Equal(t, 3, stats.Departments[0].Count)
	assert.Equal(t, []string{"6.042", "6.006", "6.046"}, stats.Departments[0].Members)
	assert.Equal(t, "Mathematics", stats.Departments[1].Name)

	require.Len(t, stats.Levels, 1)
	assert.Equal(t, "Undergraduate", stats.Levels[0].Name)
	assert.Equal(t, 5, stats.Levels[0].Count)
}

func TestAnalyzeUnknownBucket(t *testing.T) {
	s := buildStore(
		types.Course{ID: "21L.001", Title: "Foundations of Western Literature"},
	)
	stats := Analyze(Assemble(s))

	require.Len(t, stats.Departments, 1)
	assert.Equal(t, "Unknown", stats.Departments[0].Name)
	require.Len(t, stats.Levels, 1)
	assert.Equal(t, "Unknown", stats.Levels[0].Name)
}

func TestAnalyzeInDegree(t *testing.T) {
	stats := Analyze(chainGraph())

	p := stats.Prerequisites
	assert.Equal(t, 3, p.WithIncoming)
	assert.Equal(t, 2, p.WithoutIncoming)
	assert.Equal(t, 1, p.Max)
	assert.InDelta(t, 1.0, p.Mean, 1e-9)

	require.Len(t, p.Top, 3)
	// Ties keep edge-list encounter order.
	assert.Equal(t, "18.02", p.Top[0].ID)
	assert.Equal(t, "Multivariable Calculus", p.Top[0].Title)

	c := stats.Corequisites
	assert.Equal(t, 0, c.WithIncoming)
	assert.Equal(t, 5, c.WithoutIncoming)
	assert.Empty(t, c.Top)
}

func TestAnalyzeTopListCapped(t *testing.T) {
	courses := []types.Course{
		{ID: "18.01"}, {ID: "18.02"}, {ID: "18.03"},
		{ID: "18.04"}, {ID: "18.05"}, {ID: "18.06"},
	}
	// Chain the 18.0x courses so five light targets exist, then add a
	// capstone that requires all of them.
	for i := 1; i < len(courses); i++ {
		courses[i].Prerequisites = []string{courses[i-1].ID}
	}
	capstone := types.Course{ID: "8.01",
		Prerequisites: []string{"18.01", "18.02", "18.03", "18.04", "18.05", "18.06"}}
	stats := Analyze(Assemble(buildStore(append(courses, capstone)...)))

	assert.Len(t, stats.Prerequisites.Top, 5)
	// The heaviest target leads the list.
	assert.Equal(t, "8.01", stats.Prerequisites.Top[0].ID)
	assert.Equal(t, 6, stats.Prerequisites.Top[0].Count)
}

func TestAnalyzeConnectivity(t *testing.T) {
	stats := Analyze(chainGraph())

	assert.Equal(t, []string{"18.01", "6.042"}, stats.EntryPoints)
	assert.Equal(t, []string{"18.02", "6.046"}, stats.EndPoints)

	// No entry point ever appears as an edge target, and no end point as
	// an edge source.
	targets := make(map[string]bool)
	sources := make(map[string]bool)
	for _, e := range chainGraph().Edges {
		targets[e.Target] = true
		sources[e.Source] = true
	}
	for _, id := range stats.EntryPoints {
		assert.False(t, targets[id], "entry point %s has an incoming edge", id)
	}
	for _, id := range stats.EndPoints {
		assert.False(t, sources[id], "end point %s has an outgoing edge", id)
	}
}

func TestAnalyzeThreeCourseScenario(t *testing.T) {
	s := buildStore(
		types.Course{ID: "18.01"},
		types.Course{ID: "18.02", Prerequisites: []string{"18.01"}},
		types.Course{ID: "6.042"},
	)
	g := Assemble(s)

	assert.Len(t, g.Nodes, 3)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "18.01", g.Edges[0].Source)
	assert.Equal(t, "18.02", g.Edges[0].Target)
	assert.Equal(t, 1, g.Metadata.TotalPrerequisites)

	stats := Analyze(g)
	assert.Equal(t, []string{"18.01", "6.042"}, stats.EntryPoints)
	assert.Equal(t, []string{"18.02", "6.042"}, stats.EndPoints)
}

func TestAnalyzeMaxChainDepth(t *testing.T) {
	stats := Analyze(chainGraph())
	// 6.042 -> 6.006 -> 6.046 is two edges deep.
	assert.Equal(t, 2, stats.MaxChainDepth)
}

func TestAnalyzeEmptyGraph(t *testing.T) {
	stats := Analyze(types.Graph{})

	assert.Equal(t, 0, stats.TotalCourses)
	assert.Empty(t, stats.Departments)
	assert.Equal(t, 0, stats.Prerequisites.WithIncoming)
	assert.Empty(t, stats.EntryPoints)
	assert.Equal(t, 0, stats.MaxChainDepth)
}

func TestFormatStatistics(t *testing.T) {
	var buf bytes.Buffer
	FormatStatistics(Analyze(chainGraph()), &buf)
	out := buf.String()

	assert.Contains(t, out, "Total courses: 5")
	assert.Contains(t, out, "Courses by department")
	assert.Contains(t, out, "EECS: 3 courses")
	assert.Contains(t, out, "Entry points (no incoming relationships): 2")
	assert.Contains(t, out, "18.01, 6.042")
	assert.Contains(t, out, "Longest dependency chain: 2")
	// No corequisite edges, so no corequisite section.
	assert.NotContains(t, out, "Corequisite analysis")
}

func TestFormatStatisticsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatStatisticsJSON(Analyze(chainGraph()), &buf))

	assert.Contains(t, buf.String(), `"total_courses": 5`)
}
