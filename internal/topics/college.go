// Copyright Arbor Learning Co., 2026. All rights reserved.

// Package topics fetches PhD thesis metadata from OpenAlex and assigns
// each thesis an Arbor college by keyword scoring.
// See docs/ARCHITECTURE.md § Thesis Topics.
package topics

import (
	"sort"
	"strings"
)

// collegeKeywords maps each Arbor college code to the vocabulary that
// votes for it.
var collegeKeywords = map[string][]string{
	"MATH": {"mathematics", "math", "statistics", "algebra", "geometry", "number theory"},
	"AINS": {"computer science", "artificial intelligence", "machine learning", "ai", "neural network", "cs"},
	"NAT":  {"physics", "chemistry", "biology", "natural science", "quantum", "molecular"},
	"HUM":  {"philosophy", "literature", "history", "theology", "classics", "humanities"},
	"ELA":  {"language", "linguistics", "english", "writing", "literature"},
	"ARTS": {"art", "music", "aesthetic", "visual", "creative"},
	"SOC":  {"psychology", "sociology", "economics", "political science", "social science"},
	"HEAL": {"health", "medicine", "public health", "medical"},
	"CEF":  {"ecology", "environment", "sustainability", "climate"},
	"META": {"education", "pedagogy", "learning", "teaching"},
}

// defaultCollege absorbs interdisciplinary and unclassifiable theses.
const defaultCollege = "META"

// MapToCollege scores each college's vocabulary against the combined
// discipline, topic, and keyword text and returns the highest-scoring
// college code. Ties break alphabetically for determinism. No hit at
// all maps to META.
func MapToCollege(discipline string, topicNames, keywords []string) string {
	text := strings.ToLower(discipline + " " + strings.Join(topicNames, " ") + " " + strings.Join(keywords, " "))

	best := ""
	bestScore := 0
	codes := make([]string, 0, len(collegeKeywords))
	for code := range collegeKeywords {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		score := 0
		for _, kw := range collegeKeywords[code] {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			best = code
			bestScore = score
		}
	}

	if best == "" {
		return defaultCollege
	}
	return best
}
