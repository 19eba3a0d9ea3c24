// Copyright Arbor Learning Co., 2026. All rights reserved.

package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arborlearn/coursegraph/pkg/types"
)

// FormatStatistics writes the human-readable statistics report to w.
func FormatStatistics(stats types.Statistics, w io.Writer) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Course Graph Statistics")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Overall")
	fmt.Fprintf(w, "  Total courses: %d\n", stats.TotalCourses)
	fmt.Fprintf(w, "  Total edges: %d\n", stats.TotalEdges)
	fmt.Fprintf(w, "  Prerequisite relationships: %d\n", stats.TotalPrerequisites)
	fmt.Fprintf(w, "  Corequisite relationships: %d\n", stats.TotalCorequisites)
	fmt.Fprintln(w)

	formatBuckets(w, "Courses by department", stats.Departments)
	formatBuckets(w, "Courses by level", stats.Levels)

	formatInDegree(w, "Prerequisite analysis", "prerequisites", stats.Prerequisites)
	if stats.Corequisites.WithIncoming > 0 {
		formatInDegree(w, "Corequisite analysis", "corequisites", stats.Corequisites)
	}

	fmt.Fprintln(w, "Connectivity")
	fmt.Fprintf(w, "  Entry points (no incoming relationships): %d\n", len(stats.EntryPoints))
	if n := len(stats.EntryPoints); n > 0 && n <= smallBucketLimit {
		fmt.Fprintf(w, "    %s\n", strings.Join(stats.EntryPoints, ", "))
	}
	fmt.Fprintf(w, "  End points (no dependents): %d\n", len(stats.EndPoints))
	if n := len(stats.EndPoints); n > 0 && n <= smallBucketLimit {
		fmt.Fprintf(w, "    %s\n", strings.Join(stats.EndPoints, ", "))
	}
	fmt.Fprintf(w, "  Longest dependency chain: %d\n", stats.MaxChainDepth)
	fmt.Fprintln(w)

	fmt.Fprintln(w, rule)
}

func formatBuckets(w io.Writer, header string, buckets []types.BucketCount) {
	fmt.Fprintln(w, header)
	if len(buckets) == 0 {
		fmt.Fprintln(w, "  No information available")
		fmt.Fprintln(w)
		return
	}
	for _, b := range buckets {
		fmt.Fprintf(w, "  %s: %d courses\n", b.Name, b.Count)
		if len(b.Members) > 0 {
			fmt.Fprintf(w, "    %s\n", strings.Join(b.Members, ", "))
		}
	}
	fmt.Fprintln(w)
}

func formatInDegree(w io.Writer, header, noun string, s types.InDegreeSummary) {
	fmt.Fprintln(w, header)
	if s.WithIncoming == 0 {
		fmt.Fprintf(w, "  No %s relationships found\n", strings.TrimSuffix(noun, "s"))
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "  Courses with %s: %d\n", noun, s.WithIncoming)
	fmt.Fprintf(w, "  Courses without %s: %d\n", noun, s.WithoutIncoming)
	fmt.Fprintf(w, "  Maximum %s for a course: %d\n", noun, s.Max)
	fmt.Fprintf(w, "  Average %s per course: %.2f\n", noun, s.Mean)

	if len(s.Top) > 0 {
		fmt.Fprintf(w, "  Courses with most %s:\n", noun)
		for _, e := range s.Top {
			title := e.Title
			if title == "" {
				title = e.ID
			}
			fmt.Fprintf(w, "    %s: %d (%s)\n", e.ID, e.Count, title)
		}
	}
	fmt.Fprintln(w)
}

// FormatStatisticsJSON writes the statistics as indented JSON to w.
func FormatStatisticsJSON(stats types.Statistics, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}
