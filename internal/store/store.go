// Copyright Arbor Learning Co., 2026. All rights reserved.

// Package store keeps the course records for one pipeline run and
// persists them to a SQLite index between runs.
// See docs/ARCHITECTURE.md § Course Store.
package store

import "github.com/arborlearn/coursegraph/pkg/types"

// Store maps canonical course identifiers to their latest known record.
// Iteration follows first-insertion order, which keeps graph assembly
// deterministic. A run has a single writer, so Store does no locking.
type Store struct {
	records map[string]types.Course
	order   []string
}

// New returns an empty Store.
func New() *Store {
	return &Store{records: make(map[string]types.Course)}
}

// Upsert inserts or replaces the record keyed by its identifier. On
// conflict the new record wins wholesale; there is no field-level merge.
// Reprocessing the same course from two discovered URLs is rare enough
// that a replace policy beats defining merge precedence. The record
// keeps its original position in iteration order.
func (s *Store) Upsert(c types.Course) {
	if _, exists := s.records[c.ID]; !exists {
		s.order = append(s.order, c.ID)
	}
	s.records[c.ID] = c
}

// Get returns the record for id, if present.
func (s *Store) Get(id string) (types.Course, bool) {
	c, ok := s.records[id]
	return c, ok
}

// Has reports whether id is a known course.
func (s *Store) Has(id string) bool {
	_, ok := s.records[id]
	return ok
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.records)
}

// All returns every record in first-insertion order.
func (s *Store) All() []types.Course {
	out := make([]types.Course, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}
