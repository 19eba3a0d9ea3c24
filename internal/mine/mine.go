// Copyright Arbor Learning Co., 2026. All rights reserved.

// Package mine locates prerequisite and corequisite mentions in noisy
// course-page text. Several independent scanning strategies run over
// each page; their results are unioned and then reduced by Merge. New
// heuristics slot into the strategy list without touching the merge
// logic. See docs/ARCHITECTURE.md § Relation Mining.
package mine

import "sort"

// Relation keywords accepted by the strategies.
const (
	KeywordPrerequisite = "prerequisite"
	KeywordCorequisite  = "corequisite"
)

// Miner applies an ordered list of scanning strategies.
type Miner struct {
	Strategies []Strategy
}

// NewMiner returns a Miner with the default strategy list.
func NewMiner() *Miner {
	return &Miner{Strategies: DefaultStrategies()}
}

// DefaultStrategies returns the standard ordered strategy list.
func DefaultStrategies() []Strategy {
	return []Strategy{
		elementProximity{},
		labelScan{},
		sectionScan{},
		sentenceWindow{},
	}
}

// MineRelation runs every strategy over every page, unions the candidate
// identifiers, and returns the merged set with selfID removed. Pages may
// include a course's main page and its syllabus page; nil pages (a
// syllabus that does not exist) are skipped.
func (m *Miner) MineRelation(pages []*Page, keyword, selfID string) []string {
	var candidates []string
	for _, p := range pages {
		if p == nil {
			continue
		}
		for _, s := range m.Strategies {
			candidates = append(candidates, s.Mine(p, keyword)...)
		}
	}
	return Merge(candidates, selfID)
}

// Merge reduces a raw candidate multiset to a deduplicated,
// lexicographically sorted set with the course's own identifier removed:
// a course is never its own prerequisite or corequisite. Merge is pure
// and order-independent, so it is idempotent over its own output.
func Merge(candidates []string, selfID string) []string {
	seen := make(map[string]bool, len(candidates))
	var out []string
	for _, id := range candidates {
		if id == "" || id == selfID || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
