// Copyright Arbor Learning Co., 2026. All rights reserved.

package types

// ThesisTopic is one OpenAlex topic assignment with its confidence score.
type ThesisTopic struct {
	ID          string  `json:"id" yaml:"id"`
	DisplayName string  `json:"display_name" yaml:"display_name"`
	Score       float64 `json:"score" yaml:"score"`
}

// Thesis holds curated metadata for one PhD thesis fetched from OpenAlex.
type Thesis struct {
	// OpenAlexID is the bare work identifier (e.g. "W2036113194").
	OpenAlexID string `json:"openalex_id" yaml:"openalex_id"`

	Title    string `json:"title" yaml:"title"`
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Year     int    `json:"year,omitempty" yaml:"year,omitempty"`

	Authors      []string `json:"authors" yaml:"authors"`
	Institutions []string `json:"institutions" yaml:"institutions"`

	Topics   []ThesisTopic `json:"topics" yaml:"topics"`
	Keywords []string      `json:"keywords" yaml:"keywords"`

	DOI          string `json:"doi,omitempty" yaml:"doi,omitempty"`
	OpenAlexURL  string `json:"openalex_url,omitempty" yaml:"openalex_url,omitempty"`
	CitedByCount int    `json:"cited_by_count" yaml:"cited_by_count"`

	// Discipline is the primary OpenAlex topic, or "Interdisciplinary"
	// when the work carries no topics.
	Discipline string `json:"discipline" yaml:"discipline"`

	// College is the Arbor college code assigned by keyword scoring
	// (e.g. "MATH", "AINS", "META").
	College string `json:"college" yaml:"college"`
}
