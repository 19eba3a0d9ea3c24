// Copyright Arbor Learning Co., 2026. All rights reserved.

// Package types defines shared data structures for the coursegraph pipeline.
// See docs/ARCHITECTURE.md § Data Structures.
package types

// Course holds everything the pipeline knows about one course.
//
// Records are keyed by ID; re-scraping a course replaces the stored
// record wholesale, there is no field-level merge.
type Course struct {
	// ID is the canonical upper-cased course identifier (e.g. "18.01", "6.042J").
	ID string `json:"id" yaml:"id"`

	// Title is the course title as shown on its page.
	Title string `json:"title" yaml:"title"`

	// URL is the course page the record was built from.
	URL string `json:"url" yaml:"url"`

	// Department is the owning department, empty when not discovered.
	Department string `json:"department,omitempty" yaml:"department,omitempty"`

	// Level is "Undergraduate", "Graduate", etc.; empty when not discovered.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Description is the page's meta description, empty when not discovered.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Prerequisites lists canonical identifiers of required earlier courses.
	// Sorted, deduplicated, and never containing ID itself.
	Prerequisites []string `json:"prerequisites" yaml:"prerequisites"`

	// Corequisites lists canonical identifiers of concurrently required
	// courses, with the same invariants as Prerequisites.
	Corequisites []string `json:"corequisites" yaml:"corequisites"`

	// Published reports whether the course page was actually fetched,
	// as opposed to seeded sample data.
	Published bool `json:"published" yaml:"published"`
}
