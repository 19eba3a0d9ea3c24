// Copyright Arbor Learning Co., 2026. All rights reserved.

package mine

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is one parsed HTML page handed to the mining strategies. It keeps
// both the element tree (for the structural strategies) and the page's
// flattened text (for the sentence-window strategy).
type Page struct {
	doc  *goquery.Document
	text string
}

// ParsePage builds a Page from raw HTML.
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return &Page{doc: doc, text: doc.Text()}, nil
}

// ParsePageString is a convenience wrapper around ParsePage.
func ParsePageString(html string) (*Page, error) {
	return ParsePage(strings.NewReader(html))
}

// Document exposes the underlying goquery document for structural
// queries outside the mining strategies.
func (p *Page) Document() *goquery.Document {
	return p.doc
}

// Text returns the page's flattened text content.
func (p *Page) Text() string {
	return p.text
}

// Heading returns the page's main heading: the first h1, falling back to
// the document title. Empty when the page has neither.
func (p *Page) Heading() string {
	if h := strings.TrimSpace(p.doc.Find("h1").First().Text()); h != "" {
		return h
	}
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

// MetaDescription returns the content of the page's description meta tag.
func (p *Page) MetaDescription() string {
	desc, _ := p.doc.Find(`meta[name="description"]`).Attr("content")
	return strings.TrimSpace(desc)
}
