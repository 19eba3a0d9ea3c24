// Copyright Arbor Learning Co., 2026. All rights reserved.

package scrape

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlearn/coursegraph/internal/store"
)

func TestDiscoverCourseURLs(t *testing.T) {
	mux := http.NewServeMux()

	var base string
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0"?>
			<sitemapindex>
				<sitemap><loc>%s/courses/18-01-single-variable-calculus-fall-2006/sitemap.xml</loc></sitemap>
				<sitemap><loc>%s/courses/18-02-multivariable-calculus-fall-2007/sitemap.xml</loc></sitemap>
				<sitemap><loc>%s/courses/collections/sitemap.xml</loc></sitemap>
			</sitemapindex>`, base, base, base)
	})
	mux.HandleFunc("/courses/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `<html><body>
			<a href="/courses/18-01-single-variable-calculus-fall-2006/">Calculus</a>
			<a href="/courses/6-042j-mathematics-for-computer-science-fall-2010/">Math for CS</a>
			<a href="/courses/about/">About</a>
			<a href="/courses/search/">Search</a>
			<a href="%s/courses/8-01-classical-mechanics-fall-1999/">Mechanics</a>
			<a href="/donate/">Donate</a>
		</body></html>`, base)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()
	base = ts.URL

	sc := testScraper(ts.URL)
	urls, err := sc.DiscoverCourseURLs(context.Background())
	require.NoError(t, err)

	// Sitemap and browse results are unioned and deduplicated; navigation
	// links and slugs without a course number are filtered out.
	assert.ElementsMatch(t, []string{
		ts.URL + "/courses/18-01-single-variable-calculus-fall-2006",
		ts.URL + "/courses/18-02-multivariable-calculus-fall-2007",
		ts.URL + "/courses/6-042j-mathematics-for-computer-science-fall-2010",
		ts.URL + "/courses/8-01-classical-mechanics-fall-1999",
	}, urls)
	assert.IsIncreasing(t, urls)
}

func TestDiscoverCourseURLsAllApproachesFail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	sc := testScraper(ts.URL)
	urls, err := sc.DiscoverCourseURLs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestLooksLikeCoursePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"18-01-single-variable-calculus-fall-2006", true},
		{"6-042j-mathematics-for-computer-science-fall-2010", true},
		{"collections", false},
		{"18-01", false},
		{"special-topics-seminar", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeCoursePath(tt.path))
		})
	}
}

func TestRunSeedsSampleCatalogWhenDiscoveryEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	sc := testScraper(ts.URL)
	st := store.New()
	var buf bytes.Buffer

	require.NoError(t, sc.Run(context.Background(), st, &buf))

	assert.Equal(t, len(SampleCourses()), st.Len())
	assert.True(t, st.Has("18.01"))
	assert.Contains(t, buf.String(), "seeding sample catalog")

	// Sample records are marked unpublished.
	c, _ := st.Get("18.01")
	assert.False(t, c.Published)
}

func TestRunFetchesDiscoveredCourses(t *testing.T) {
	mux := http.NewServeMux()

	var base string
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `<sitemapindex>
			<sitemap><loc>%s/courses/18-01-single-variable-calculus-fall-2006/sitemap.xml</loc></sitemap>
			<sitemap><loc>%s/courses/18-02-multivariable-calculus-fall-2007/sitemap.xml</loc></sitemap>
		</sitemapindex>`, base, base)
	})
	mux.HandleFunc("/courses/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/courses/18-01-single-variable-calculus-fall-2006/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><h1>18.01 Single Variable Calculus</h1></body></html>`))
	})
	mux.HandleFunc("/courses/18-02-multivariable-calculus-fall-2007/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body>
			<h1>18.02 Multivariable Calculus</h1>
			<p>Prerequisites: 18.01</p>
		</body></html>`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()
	base = ts.URL

	sc := testScraper(ts.URL)
	st := store.New()
	var buf bytes.Buffer

	require.NoError(t, sc.Run(context.Background(), st, &buf))

	assert.Equal(t, 2, st.Len())
	c, ok := st.Get("18.02")
	require.True(t, ok)
	assert.Equal(t, []string{"18.01"}, c.Prerequisites)
	assert.Contains(t, buf.String(), "processed 2 courses")
}

func TestRunHonorsMaxCourses(t *testing.T) {
	mux := http.NewServeMux()

	var base string
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `<sitemapindex>
			<sitemap><loc>%s/courses/18-01-single-variable-calculus-fall-2006/sitemap.xml</loc></sitemap>
			<sitemap><loc>%s/courses/18-02-multivariable-calculus-fall-2007/sitemap.xml</loc></sitemap>
		</sitemapindex>`, base, base)
	})
	mux.HandleFunc("/courses/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/courses/18-01-single-variable-calculus-fall-2006/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><h1>18.01 Single Variable Calculus</h1></body></html>`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()
	base = ts.URL

	cfg := testScraper(ts.URL).cfg
	cfg.MaxCourses = 1
	sc := New(cfg)

	st := store.New()
	var buf bytes.Buffer
	require.NoError(t, sc.Run(context.Background(), st, &buf))

	assert.Equal(t, 1, st.Len())
	assert.Contains(t, buf.String(), "fetching 1 courses")
}
