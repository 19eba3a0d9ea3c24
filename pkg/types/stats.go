// Copyright Arbor Learning Co., 2026. All rights reserved.

package types

// BucketCount is a grouping bucket (department or level) with its member
// count. Members is populated only for small buckets (at most ten
// courses) so the report stays readable.
type BucketCount struct {
	Name    string   `json:"name" yaml:"name"`
	Count   int      `json:"count" yaml:"count"`
	Members []string `json:"members,omitempty" yaml:"members,omitempty"`
}

// DegreeEntry names one course and its in-degree for a relation kind.
type DegreeEntry struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Count int    `json:"count" yaml:"count"`
}

// InDegreeSummary summarizes incoming edges of one relation kind.
type InDegreeSummary struct {
	// WithIncoming counts courses with at least one incoming edge of this kind.
	WithIncoming int `json:"with_incoming" yaml:"with_incoming"`

	// WithoutIncoming counts the remaining courses.
	WithoutIncoming int `json:"without_incoming" yaml:"without_incoming"`

	// Max is the largest in-degree of this kind.
	Max int `json:"max" yaml:"max"`

	// Mean is averaged over courses with at least one incoming edge,
	// not over all courses.
	Mean float64 `json:"mean" yaml:"mean"`

	// Top lists up to five courses by in-degree, ties broken by
	// encounter order in the edge list.
	Top []DegreeEntry `json:"top" yaml:"top"`
}

// Statistics is the analyzer's read-only report over an assembled graph.
type Statistics struct {
	TotalCourses       int `json:"total_courses" yaml:"total_courses"`
	TotalEdges         int `json:"total_edges" yaml:"total_edges"`
	TotalPrerequisites int `json:"total_prerequisites" yaml:"total_prerequisites"`
	TotalCorequisites  int `json:"total_corequisites" yaml:"total_corequisites"`

	Departments []BucketCount `json:"departments" yaml:"departments"`
	Levels      []BucketCount `json:"levels" yaml:"levels"`

	Prerequisites InDegreeSummary `json:"prerequisites" yaml:"prerequisites"`
	Corequisites  InDegreeSummary `json:"corequisites" yaml:"corequisites"`

	// EntryPoints lists courses that never appear as an edge target,
	// in node-list order.
	EntryPoints []string `json:"entry_points" yaml:"entry_points"`

	// EndPoints lists courses that never appear as an edge source,
	// in node-list order.
	EndPoints []string `json:"end_points" yaml:"end_points"`

	// MaxChainDepth is the longest dependency chain, in edges, reachable
	// from any entry point.
	MaxChainDepth int `json:"max_chain_depth" yaml:"max_chain_depth"`
}
