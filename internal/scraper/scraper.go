// Package scraper implements best-effort job board scraping. Boards change
// markup and throttle bots at will; every scraper here logs what it could
// not parse and moves on. Nothing in this package retries, and none of its
// errors should ever fail a request that can still serve partial data.
package scraper

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// fetchDocument GETs a URL with a browser user agent and parses the body.
func fetchDocument(ctx context.Context, client *http.Client, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// politeDelay sleeps a random duration in [min,max) between page fetches,
// bailing out early if the request context is done.
func politeDelay(ctx context.Context, min, max time.Duration) {
	d := min + time.Duration(rand.Int63n(int64(max-min)))
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// textOr returns the trimmed text of the first selection match, or fallback
// when the node is absent. Scraped markup is unreliable; "N/A" mirrors what
// the aggregation layer expects for unparseable fields.
func textOr(s *goquery.Selection, fallback string) string {
	if s.Length() == 0 {
		return fallback
	}
	text := trimmed(s.First().Text())
	if text == "" {
		return fallback
	}
	return text
}
