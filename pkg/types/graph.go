// Copyright Arbor Learning Co., 2026. All rights reserved.

package types

// EdgeKind distinguishes the two relationship types in the course graph.
type EdgeKind string

const (
	EdgePrerequisite EdgeKind = "prerequisite"
	EdgeCorequisite  EdgeKind = "corequisite"
)

// Node is one course in the assembled graph document.
type Node struct {
	// ID is the canonical course identifier.
	ID string `json:"id" yaml:"id"`

	// Label is the display label, "ID: Title".
	Label string `json:"label" yaml:"label"`

	Title       string `json:"title" yaml:"title"`
	URL         string `json:"url" yaml:"url"`
	Department  string `json:"department,omitempty" yaml:"department,omitempty"`
	Level       string `json:"level,omitempty" yaml:"level,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Edge is one directed relationship. For both kinds the edge points from
// the required (or concurrent) course toward the course that lists it.
type Edge struct {
	Source string   `json:"source" yaml:"source"`
	Target string   `json:"target" yaml:"target"`
	Type   EdgeKind `json:"type" yaml:"type"`
	Label  string   `json:"label" yaml:"label"`
}

// GraphMetadata carries summary counters for the graph document.
// Relationship totals count listed references, including ones whose
// course was never fetched and therefore produced no edge.
type GraphMetadata struct {
	TotalCourses       int `json:"total_courses" yaml:"total_courses"`
	TotalPrerequisites int `json:"total_prerequisites" yaml:"total_prerequisites"`
	TotalCorequisites  int `json:"total_corequisites" yaml:"total_corequisites"`
}

// Graph is the node/edge document consumed by the visualization frontend.
// It is built once per run and never mutated afterward.
type Graph struct {
	Nodes    []Node        `json:"nodes" yaml:"nodes"`
	Edges    []Edge        `json:"edges" yaml:"edges"`
	Metadata GraphMetadata `json:"metadata" yaml:"metadata"`
}
