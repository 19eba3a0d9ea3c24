// Copyright Arbor Learning Co., 2026. All rights reserved.

package topics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/arborlearn/coursegraph/internal/httputil"
	"github.com/arborlearn/coursegraph/pkg/types"
)

// openAlexWorksBase is the OpenAlex Works endpoint. Declared as a var so
// tests can substitute an httptest server.
var openAlexWorksBase = "https://api.openalex.org/works"

// openAlexPageSize is the per_page ceiling OpenAlex accepts.
const openAlexPageSize = 200

// conceptScoreFloor filters low-confidence OpenAlex concepts out of the
// keyword list.
const conceptScoreFloor = 0.5

// Client fetches thesis metadata from OpenAlex.
type Client struct {
	HTTP *http.Client
	cfg  types.TopicsConfig
}

// NewClient returns a Client with config defaults applied.
func NewClient(cfg types.TopicsConfig) *Client {
	if cfg.Limit <= 0 {
		cfg.Limit = 50
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RequestDelay <= 0 {
		cfg.RequestDelay = 500 * time.Millisecond
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "coursegraph/0.1"
	}
	return &Client{
		HTTP: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
	}
}

// FetchTheses pages through OpenAlex dissertations sorted by citation
// count and returns curated Thesis records with college assignments.
// Progress lines go to w.
func (c *Client) FetchTheses(ctx context.Context, w io.Writer) ([]types.Thesis, error) {
	var theses []types.Thesis
	page := 1

	for len(theses) < c.cfg.Limit {
		fmt.Fprintf(w, "fetching OpenAlex page %d\n", page)

		works, err := c.fetchPage(ctx, page)
		if err != nil {
			return theses, err
		}
		if len(works) == 0 {
			break
		}

		for _, work := range works {
			if len(theses) >= c.cfg.Limit {
				break
			}
			theses = append(theses, curateThesis(work))
		}

		page++
		select {
		case <-ctx.Done():
			return theses, ctx.Err()
		case <-time.After(c.cfg.RequestDelay):
		}
	}

	return theses, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]openAlexWork, error) {
	perPage := c.cfg.Limit
	if perPage > openAlexPageSize {
		perPage = openAlexPageSize
	}

	params := url.Values{
		"filter":   {"type:dissertation"},
		"per_page": {fmt.Sprintf("%d", perPage)},
		"page":     {fmt.Sprintf("%d", page)},
		"sort":     {"cited_by_count:desc"},
	}
	if c.cfg.Email != "" {
		params.Set("mailto", c.cfg.Email)
	}

	reqURL := openAlexWorksBase + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return nil, fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAlex API returned HTTP %d", resp.StatusCode)
	}

	var oar openAlexResponse
	if err := json.NewDecoder(resp.Body).Decode(&oar); err != nil {
		return nil, fmt.Errorf("parsing OpenAlex response: %w", err)
	}
	return oar.Results, nil
}

// curateThesis maps one OpenAlex work into the curated Thesis shape,
// including the derived discipline and college.
func curateThesis(work openAlexWork) types.Thesis {
	t := types.Thesis{
		OpenAlexID:   strings.TrimPrefix(work.ID, "https://openalex.org/"),
		Title:        work.Title,
		Abstract:     reconstructAbstract(work.AbstractInvertedIndex),
		Year:         work.PublicationYear,
		DOI:          work.DOI,
		OpenAlexURL:  work.ID,
		CitedByCount: work.CitedByCount,
	}

	for _, authorship := range work.Authorships {
		if authorship.Author.DisplayName != "" {
			t.Authors = append(t.Authors, authorship.Author.DisplayName)
		}
		for _, inst := range authorship.Institutions {
			if inst.DisplayName != "" {
				t.Institutions = append(t.Institutions, inst.DisplayName)
			}
		}
	}

	var topicNames []string
	for _, topic := range work.Topics {
		t.Topics = append(t.Topics, types.ThesisTopic{
			ID:          strings.TrimPrefix(topic.ID, "https://openalex.org/"),
			DisplayName: topic.DisplayName,
			Score:       topic.Score,
		})
		topicNames = append(topicNames, topic.DisplayName)
	}

	for _, concept := range work.Concepts {
		if concept.Score > conceptScoreFloor {
			t.Keywords = append(t.Keywords, concept.DisplayName)
		}
	}

	if len(topicNames) > 0 {
		t.Discipline = topicNames[0]
	} else {
		t.Discipline = "Interdisciplinary"
	}
	t.College = MapToCollege(t.Discipline, topicNames, t.Keywords)

	return t
}

// reconstructAbstract converts OpenAlex's abstract_inverted_index back
// to plain text. The inverted index maps each word to the positions
// where it appears.
func reconstructAbstract(invertedIndex map[string][]int) string {
	if len(invertedIndex) == 0 {
		return ""
	}

	type posWord struct {
		pos  int
		word string
	}
	var pairs []posWord
	for word, positions := range invertedIndex {
		for _, pos := range positions {
			pairs = append(pairs, posWord{pos: pos, word: word})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].pos < pairs[j].pos
	})

	words := make([]string, len(pairs))
	for i, p := range pairs {
		words[i] = p.word
	}
	return strings.Join(words, " ")
}

// OpenAlex API JSON structures.
type openAlexResponse struct {
	Meta    openAlexMeta   `json:"meta"`
	Results []openAlexWork `json:"results"`
}

type openAlexMeta struct {
	Count   int `json:"count"`
	PerPage int `json:"per_page"`
	Page    int `json:"page"`
}

type openAlexWork struct {
	ID                    string               `json:"id"`
	Title                 string               `json:"title"`
	DOI                   string               `json:"doi"`
	PublicationYear       int                  `json:"publication_year"`
	CitedByCount          int                  `json:"cited_by_count"`
	Authorships           []openAlexAuthorship `json:"authorships"`
	Topics                []openAlexTopic      `json:"topics"`
	Concepts              []openAlexConcept    `json:"concepts"`
	AbstractInvertedIndex map[string][]int     `json:"abstract_inverted_index"`
}

type openAlexAuthorship struct {
	Author       openAlexAuthor        `json:"author"`
	Institutions []openAlexInstitution `json:"institutions"`
}

type openAlexAuthor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type openAlexInstitution struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type openAlexTopic struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Score       float64 `json:"score"`
}

type openAlexConcept struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Score       float64 `json:"score"`
}
