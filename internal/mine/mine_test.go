// Copyright Arbor Learning Co., 2026. All rights reserved.

package mine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		selfID     string
		want       []string
	}{
		{
			name:       "deduplicates and sorts",
			candidates: []string{"6.042", "18.01", "6.042", "18.01"},
			want:       []string{"18.01", "6.042"},
		},
		{
			name:       "removes self reference",
			candidates: []string{"6.006", "6.042", "6.006"},
			selfID:     "6.006",
			want:       []string{"6.042"},
		},
		{
			name:       "drops empty candidates",
			candidates: []string{"", "18.02", ""},
			want:       []string{"18.02"},
		},
		{
			name:       "empty input",
			candidates: nil,
			want:       nil,
		},
		{
			name:       "only self",
			candidates: []string{"8.01"},
			selfID:     "8.01",
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.candidates, tt.selfID)
			assert.Equal(t, tt.want, got)

			// Merging merged output changes nothing.
			assert.Equal(t, got, Merge(got, tt.selfID))
		})
	}
}

func TestLabelScan(t *testing.T) {
	page, err := ParsePageString(`
		<html><body>
			<div><p>Prerequisites: 18.01 and 18.02</p></div>
			<div><p>Unrelated text mentioning 9.99</p></div>
		</body></html>`)
	require.NoError(t, err)

	got := labelScan{}.Mine(page, KeywordPrerequisite)
	assert.Contains(t, got, "18.01")
	assert.Contains(t, got, "18.02")
}

func TestElementProximity(t *testing.T) {
	// The keyword and the identifiers live in sibling list items; only
	// the shared ancestor sees both.
	page, err := ParsePageString(`
		<html><body>
			<div class="requirements">
				<ul>
					<li>Prerequisite courses</li>
					<li>6.100 Introduction to Programming</li>
					<li>18.01 Single Variable Calculus</li>
				</ul>
			</div>
		</body></html>`)
	require.NoError(t, err)

	got := elementProximity{}.Mine(page, KeywordPrerequisite)
	assert.Contains(t, got, "18.01")
}

func TestSectionScan(t *testing.T) {
	page, err := ParsePageString(`
		<html><body>
			<div class="course-info">
				<h2>Requirements</h2>
				<p>Students need the prerequisite material from 8.01.</p>
			</div>
			<div class="footer">
				<p>Also mentions 5.111 but is not a course section.</p>
			</div>
		</body></html>`)
	require.NoError(t, err)

	got := sectionScan{}.Mine(page, KeywordPrerequisite)
	assert.Contains(t, got, "8.01")
	assert.NotContains(t, got, "5.111")
}

func TestSentenceWindow(t *testing.T) {
	// The period inside an identifier must not end the window; the
	// sentence-ending period must.
	page, err := ParsePageString(
		`<html><body><p>Prerequisites: 6.042 or 18.01. Corequisites: 8.01</p></body></html>`)
	require.NoError(t, err)

	prereqs := sentenceWindow{}.Mine(page, KeywordPrerequisite)
	assert.ElementsMatch(t, []string{"6.042", "18.01"}, prereqs)
	assert.NotContains(t, prereqs, "8.01")

	coreqs := sentenceWindow{}.Mine(page, KeywordCorequisite)
	assert.Equal(t, []string{"8.01"}, coreqs)
}

func TestSentenceAfter(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start int
		want  string
	}{
		{
			name: "stops at period before space",
			text: "take 6.042 first. then more",
			want: "take 6.042 first",
		},
		{
			name: "stops at newline",
			text: "take 18.01\nlater text",
			want: "take 18.01",
		},
		{
			name: "runs to end of text",
			text: "requires 8.01",
			want: "requires 8.01",
		},
		{
			name: "trailing period at end of text",
			text: "requires 8.02.",
			want: "requires 8.02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sentenceAfter(tt.text, tt.start))
		})
	}
}

func TestMineRelation(t *testing.T) {
	main, err := ParsePageString(`
		<html><body>
			<div class="course-info">
				<p>Prerequisites: 18.01. This course is 18.02.</p>
			</div>
		</body></html>`)
	require.NoError(t, err)

	syllabus, err := ParsePageString(`
		<html><body>
			<div><p>Prerequisites: 18.01 and 6.042</p></div>
		</body></html>`)
	require.NoError(t, err)

	m := NewMiner()

	// Candidates from both pages are unioned, deduplicated, and the
	// course's own identifier is removed.
	got := m.MineRelation([]*Page{main, syllabus}, KeywordPrerequisite, "18.02")
	assert.Equal(t, []string{"18.01", "6.042"}, got)

	// A missing syllabus page is skipped, not an error.
	got = m.MineRelation([]*Page{main, nil}, KeywordPrerequisite, "18.02")
	assert.Equal(t, []string{"18.01"}, got)
}

func TestMineRelationNoMatches(t *testing.T) {
	page, err := ParsePageString(`<html><body><p>An open-admission seminar.</p></body></html>`)
	require.NoError(t, err)

	m := NewMiner()
	assert.Empty(t, m.MineRelation([]*Page{page}, KeywordPrerequisite, "21L.001"))
}
