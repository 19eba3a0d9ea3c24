// Copyright Arbor Learning Co., 2026. All rights reserved.

package mine

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/arborlearn/coursegraph/internal/ident"
)

// Strategy is one independent text-scanning heuristic. Strategies
// deliberately overlap: a false positive (an identifier mentioned near,
// but not actually a requisite) is accepted in exchange for recall,
// because downstream consumers treat missing edges as the failure mode
// to avoid. An empty result is normal, not an error.
type Strategy interface {
	Name() string

	// Mine returns every candidate identifier the strategy can associate
	// with the relation keyword ("prerequisite" or "corequisite") on the
	// page. Duplicates and self-references are the merger's problem.
	Mine(p *Page, keyword string) []string
}

// textBearingSelector lists the elements whose own text is worth
// scanning for relation keywords.
const textBearingSelector = "p, div, li, td, th, span, strong, em"

// ancestorSelector lists the structural containers a keyword-bearing
// element climbs to before identifier extraction.
const ancestorSelector = "div, section, article, td"

// sectionClassRe marks class attributes that hint at a course-info or
// syllabus section.
var sectionClassRe = regexp.MustCompile(`(?i)course|syllabus|info`)

// elementProximity finds keyword-bearing elements and extracts
// identifiers from their nearest structural ancestor, capturing mentions
// in nearby sentences and list items, not just the exact sentence.
type elementProximity struct{}

func (elementProximity) Name() string { return "element-proximity" }

func (elementProximity) Mine(p *Page, keyword string) []string {
	var found []string
	p.doc.Find(textBearingSelector).Each(func(_ int, s *goquery.Selection) {
		if !containsKeyword(s.Text(), keyword) {
			return
		}
		ancestor := s.ParentsFiltered(ancestorSelector).First()
		if ancestor.Length() == 0 {
			return
		}
		found = append(found, ident.FindAll(ancestor.Text())...)
	})
	return found
}

// labelScan targets the "Prerequisites: X, Y" idiom: leaf elements whose
// own text carries the labeled keyword, scanned through their immediate
// container.
type labelScan struct{}

func (labelScan) Name() string { return "label" }

func (labelScan) Mine(p *Page, keyword string) []string {
	labelRe := regexp.MustCompile(`(?i)` + keyword + `s?:`)

	var found []string
	p.doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() > 0 || !labelRe.MatchString(s.Text()) {
			return
		}
		found = append(found, ident.FindAll(s.Parent().Text())...)
	})
	return found
}

// sectionScan extracts identifiers from whole syllabus/course-info
// blocks that mention the keyword anywhere.
type sectionScan struct{}

func (sectionScan) Name() string { return "section" }

func (sectionScan) Mine(p *Page, keyword string) []string {
	var found []string
	p.doc.Find("section, div").Each(func(_ int, s *goquery.Selection) {
		cls, _ := s.Attr("class")
		if !sectionClassRe.MatchString(cls) {
			return
		}
		if !containsKeyword(s.Text(), keyword) {
			return
		}
		found = append(found, ident.FindAll(s.Text())...)
	})
	return found
}

// sentenceWindow works on the raw page text: each labeled keyword
// occurrence opens a window that runs to the next sentence boundary, and
// identifiers inside the window are extracted. This is the only strategy
// that survives pages with no usable element structure.
type sentenceWindow struct{}

func (sentenceWindow) Name() string { return "sentence-window" }

func (sentenceWindow) Mine(p *Page, keyword string) []string {
	openRe := regexp.MustCompile(`(?i)` + keyword + `s?[:\s]+`)

	var found []string
	text := p.Text()
	for _, loc := range openRe.FindAllStringIndex(text, -1) {
		window := sentenceAfter(text, loc[1])
		found = append(found, ident.FindAll(window)...)
	}
	return found
}

// sentenceAfter returns text[start:] up to the next sentence boundary: a
// period followed by whitespace (or end of text), or a newline. A period
// inside an identifier like "6.042" is not a boundary.
func sentenceAfter(text string, start int) string {
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '\n':
			return text[start:i]
		case '.':
			if i+1 == len(text) || text[i+1] == ' ' || text[i+1] == '\t' {
				return text[start:i]
			}
		}
	}
	return text[start:]
}

// containsKeyword reports whether text mentions the keyword,
// case-insensitively.
func containsKeyword(text, keyword string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(keyword))
}
