// Copyright Arbor Learning Co., 2026. All rights reserved.

package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"github.com/arborlearn/coursegraph/internal/httputil"
)

// discoveryApproach is one way of finding course URLs. Approaches run in
// order and their results are unioned; an approach that fails or finds
// nothing is logged and skipped, never fatal.
type discoveryApproach struct {
	name string
	run  func(ctx context.Context) ([]string, error)
}

// DiscoverCourseURLs collects course page URLs from the sitemap and the
// browse page, deduplicated and sorted. An empty result is a normal
// outcome (the caller falls back to sample data).
func (sc *Scraper) DiscoverCourseURLs(ctx context.Context) ([]string, error) {
	approaches := []discoveryApproach{
		{name: "sitemap", run: sc.discoverFromSitemap},
		{name: "browse", run: sc.discoverFromBrowse},
	}

	seen := make(map[string]bool)
	for _, a := range approaches {
		urls, err := a.run(ctx)
		if err != nil {
			log.WithField("approach", a.name).WithError(err).Warn("discovery approach failed")
			continue
		}
		log.WithFields(log.Fields{"approach": a.name, "count": len(urls)}).Info("discovered course URLs")
		for _, u := range urls {
			seen[u] = true
		}
	}

	out := make([]string, 0, len(seen))
	for u := range seen {
		out = append(out, u)
	}
	sort.Strings(out)
	return out, ctx.Err()
}

// discoverFromSitemap harvests course URLs from the sitemap with a
// plain regex scan, which has proven more reliable than XML parsing for
// this sitemap.
func (sc *Scraper) discoverFromSitemap(ctx context.Context) ([]string, error) {
	body, err := sc.getRaw(ctx, sc.cfg.BaseURL+"/sitemap.xml")
	if err != nil {
		return nil, err
	}

	urlRe := regexp.MustCompile(regexp.QuoteMeta(sc.cfg.BaseURL) + `/courses/[^\s<>"]+`)

	var urls []string
	for _, raw := range urlRe.FindAllString(body, -1) {
		u := strings.TrimRight(strings.ReplaceAll(raw, "/sitemap.xml", ""), "/")
		if path, ok := coursePath(u); ok && looksLikeCoursePath(path) && strings.Count(u, "/") >= 4 {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// discoverFromBrowse walks anchor hrefs on the courses browse page.
func (sc *Scraper) discoverFromBrowse(ctx context.Context) ([]string, error) {
	page, err := sc.get(ctx, sc.cfg.BaseURL+"/courses/")
	if err != nil {
		return nil, err
	}

	var urls []string
	page.Document().Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		path, ok := coursePath(href)
		if !ok || path == "" {
			return
		}
		if strings.HasPrefix(path, "about") || strings.HasPrefix(path, "help") ||
			strings.HasPrefix(path, "search") || strings.HasPrefix(path, "sitemap") ||
			strings.HasPrefix(path, "#") {
			return
		}
		if !looksLikeCoursePath(path) {
			return
		}
		full := href
		if strings.HasPrefix(href, "/") {
			full = sc.cfg.BaseURL + href
		}
		urls = append(urls, strings.TrimRight(full, "/"))
	})
	return urls, nil
}

// coursePath returns the path segment after "/courses/".
func coursePath(u string) (string, bool) {
	_, after, found := strings.Cut(u, "/courses/")
	if !found {
		return "", false
	}
	return strings.Trim(after, "/"), true
}

// looksLikeCoursePath reports whether a path segment looks like a full
// course URL slug: it carries a course-number pattern and enough
// dash-separated words to include a title, not just a number.
func looksLikeCoursePath(path string) bool {
	return slugPattern.MatchString(path) && len(strings.Split(path, "-")) >= 3
}

// getRaw fetches url and returns the raw body as a string.
func (sc *Scraper) getRaw(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", sc.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, sc.client, req, sc.cfg.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	return string(data), nil
}
