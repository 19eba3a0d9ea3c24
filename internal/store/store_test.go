// Copyright Arbor Learning Co., 2026. All rights reserved.

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborlearn/coursegraph/pkg/types"
)

func TestUpsertReplacesWholesale(t *testing.T) {
	s := New()
	s.Upsert(types.Course{
		ID:            "18.01",
		Title:         "Single Variable Calculus",
		Description:   "First pass",
		Prerequisites: []string{"5.111"},
	})
	s.Upsert(types.Course{
		ID:    "18.01",
		Title: "Single Variable Calculus (updated)",
	})

	assert.Equal(t, 1, s.Len())

	c, ok := s.Get("18.01")
	assert.True(t, ok)
	assert.Equal(t, "Single Variable Calculus (updated)", c.Title)
	// The replacement wins wholesale: fields absent from the new record
	// are gone, not merged.
	assert.Empty(t, c.Description)
	assert.Empty(t, c.Prerequisites)
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	s := New()
	s.Upsert(types.Course{ID: "8.01"})
	s.Upsert(types.Course{ID: "18.01"})
	s.Upsert(types.Course{ID: "6.042"})

	// Re-upserting keeps the original position.
	s.Upsert(types.Course{ID: "8.01", Title: "Classical Mechanics"})

	var ids []string
	for _, c := range s.All() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"8.01", "18.01", "6.042"}, ids)
	assert.Equal(t, "Classical Mechanics", s.All()[0].Title)
}

func TestHasAndGet(t *testing.T) {
	s := New()
	assert.False(t, s.Has("6.006"))

	s.Upsert(types.Course{ID: "6.006", Title: "Introduction to Algorithms"})
	assert.True(t, s.Has("6.006"))

	_, ok := s.Get("6.046")
	assert.False(t, ok)
}
