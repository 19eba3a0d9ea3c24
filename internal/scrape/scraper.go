// Copyright Arbor Learning Co., 2026. All rights reserved.

// Package scrape discovers course pages, fetches them politely, and
// turns each page into a course record via the mining pipeline.
// See docs/ARCHITECTURE.md § Scraping.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/arborlearn/coursegraph/internal/httputil"
	"github.com/arborlearn/coursegraph/internal/ident"
	"github.com/arborlearn/coursegraph/internal/mine"
	"github.com/arborlearn/coursegraph/internal/store"
	"github.com/arborlearn/coursegraph/pkg/types"
)

const (
	defaultBaseURL      = "https://ocw.mit.edu"
	defaultUserAgent    = "coursegraph/0.1 (compatible; course graph builder)"
	defaultTimeout      = 30 * time.Second
	defaultRequestDelay = 500 * time.Millisecond

	// syllabusSuffix is appended to a course URL to reach its syllabus
	// page, which often carries the requisite text the landing page omits.
	syllabusSuffix = "/pages/syllabus/"
)

// slugPattern matches the course number embedded in a URL slug, where
// the dot is usually flattened to a dash ("18-01-single-variable-...").
var slugPattern = regexp.MustCompile(`(\d+[-.]\d+)`)

// Scraper fetches course pages and builds course records.
type Scraper struct {
	cfg    types.ScrapeConfig
	client *http.Client
	miner  *mine.Miner
}

// New returns a Scraper with config defaults applied.
func New(cfg types.ScrapeConfig) *Scraper {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestDelay <= 0 {
		cfg.RequestDelay = defaultRequestDelay
	}

	return &Scraper{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		miner:  mine.NewMiner(),
	}
}

// get fetches url and parses the body. Non-200 responses are errors.
func (sc *Scraper) get(ctx context.Context, url string) (*mine.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", sc.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, sc.client, req, sc.cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	return mine.ParsePage(resp.Body)
}

// FetchCourse fetches one course page (and its syllabus page when it
// exists) and builds the course record. A page that yields no usable
// identifier returns (nil, nil): the page is skipped, not failed.
func (sc *Scraper) FetchCourse(ctx context.Context, courseURL string) (*types.Course, error) {
	page, err := sc.get(ctx, courseURL)
	if err != nil {
		return nil, err
	}

	// The syllabus page is optional; many courses do not publish one.
	syllabusURL := strings.TrimRight(courseURL, "/") + syllabusSuffix
	syllabus, err := sc.get(ctx, syllabusURL)
	if err != nil {
		log.WithField("url", syllabusURL).Debug("no syllabus page")
		syllabus = nil
	}

	id, title := sc.resolveIdentity(page, courseURL)
	if id == "" {
		log.WithField("url", courseURL).Warn("no course identifier found, skipping page")
		return nil, nil
	}
	if title == "" {
		title = fmt.Sprintf("Course %s", id)
	}

	pages := []*mine.Page{page, syllabus}
	course := &types.Course{
		ID:            id,
		Title:         title,
		URL:           courseURL,
		Description:   page.MetaDescription(),
		Prerequisites: sc.miner.MineRelation(pages, mine.KeywordPrerequisite, id),
		Corequisites:  sc.miner.MineRelation(pages, mine.KeywordCorequisite, id),
		Published:     true,
	}
	return course, nil
}

// resolveIdentity determines whose page this is. Policy: first
// identifier in the heading wins; then the URL slug with its dashes
// restored to dots; then any course-number pattern anywhere in the URL.
// Multiple candidates are not an error, the first in document order is
// taken.
func (sc *Scraper) resolveIdentity(page *mine.Page, courseURL string) (id, title string) {
	heading := page.Heading()
	if found, ok := ident.Find(heading); ok {
		return found, strings.TrimSpace(heading)
	}
	return identifierFromURL(courseURL), strings.TrimSpace(heading)
}

// identifierFromURL recovers a course identifier from the URL itself,
// e.g. "18.01" from ".../courses/18-01-single-variable-calculus-fall-2006/".
func identifierFromURL(courseURL string) string {
	trimmed := strings.TrimRight(courseURL, "/")
	parts := strings.Split(trimmed, "/")
	slug := parts[len(parts)-1]

	if m := slugPattern.FindString(slug); m != "" {
		return strings.ToUpper(strings.ReplaceAll(m, "-", "."))
	}
	if found, ok := ident.Find(slug); ok {
		return found
	}
	// Last resort: any course-number shape anywhere in the URL.
	if m := slugPattern.FindString(trimmed); m != "" {
		return strings.ToUpper(strings.ReplaceAll(m, "-", "."))
	}
	return ""
}

// Run executes the scrape pipeline: discover course URLs, fetch each to
// completion, and upsert the records into st. Progress checkpoints go
// to w; per-request noise goes to the structured log. When discovery
// finds nothing the sample catalog is loaded instead so downstream
// stages still have data to work with.
func (sc *Scraper) Run(ctx context.Context, st *store.Store, w io.Writer) error {
	urls, err := sc.DiscoverCourseURLs(ctx)
	if err != nil {
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(w, "no courses discovered, seeding sample catalog")
		for _, c := range SampleCourses() {
			st.Upsert(c)
		}
		fmt.Fprintf(w, "processed %d courses\n", st.Len())
		return nil
	}

	if sc.cfg.MaxCourses > 0 && len(urls) > sc.cfg.MaxCourses {
		urls = urls[:sc.cfg.MaxCourses]
	}
	fmt.Fprintf(w, "fetching %d courses\n", len(urls))

	for i, u := range urls {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if i > 0 {
			time.Sleep(sc.cfg.RequestDelay)
		}

		course, err := sc.FetchCourse(ctx, u)
		if err != nil {
			log.WithField("url", u).WithError(err).Warn("course fetch failed")
			continue
		}
		if course == nil {
			continue
		}
		st.Upsert(*course)

		if (i+1)%10 == 0 {
			fmt.Fprintf(w, "  progress: %d/%d pages\n", i+1, len(urls))
		}
	}

	fmt.Fprintf(w, "processed %d courses\n", st.Len())
	return nil
}
