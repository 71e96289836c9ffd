package scraper

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

const indeedSearchURL = "https://www.indeed.com/jobs"

// Indeed scrapes the Indeed job search result pages.
type Indeed struct {
	client   *http.Client
	maxPages int
	log      *slog.Logger
}

func NewIndeed(timeout time.Duration, maxPages int) *Indeed {
	if maxPages < 1 {
		maxPages = 3
	}
	return &Indeed{
		client:   newHTTPClient(timeout),
		maxPages: maxPages,
		log:      logger.With("scraper.indeed"),
	}
}

func (s *Indeed) Name() string { return "Indeed" }

func (s *Indeed) Scrape(ctx context.Context, keywords, location string) ([]domain.JobPosting, error) {
	var jobs []domain.JobPosting

	for page := 0; page < s.maxPages; page++ {
		params := url.Values{}
		params.Set("q", keywords)
		params.Set("l", location)
		params.Set("fromage", "1") // posted within 1 day
		params.Set("start", strconv.Itoa(page*10))

		doc, err := fetchDocument(ctx, s.client, indeedSearchURL+"?"+params.Encode())
		if err != nil {
			s.log.Warn("page fetch failed", "page", page, "error", err)
			break
		}

		jobs = append(jobs, ParseIndeedJobs(doc)...)

		if page < s.maxPages-1 {
			politeDelay(ctx, 1*time.Second, 3*time.Second)
		}
	}

	return jobs, nil
}

// ParseIndeedJobs extracts postings from a search result page.
func ParseIndeedJobs(doc *goquery.Document) []domain.JobPosting {
	var jobs []domain.JobPosting

	doc.Find("div.job_seen_beacon").Each(func(_ int, card *goquery.Selection) {
		titleLink := card.Find("h2.jobTitle a").First()
		href, _ := titleLink.Attr("href")
		if href != "" {
			href = "https://www.indeed.com" + href
		}

		jobs = append(jobs, domain.JobPosting{
			Company:    textOr(card.Find("span.companyName"), "N/A"),
			Title:      textOr(titleLink, "N/A"),
			Location:   textOr(card.Find("div.companyLocation"), "N/A"),
			DatePosted: textOr(card.Find("span.date"), "Recent"),
			URL:        href,
			Platform:   "Indeed",
			Salary:     textOr(card.Find("span.estimated-salary"), ""),
		})
	})

	return jobs
}

var _ domain.PostingSource = (*Indeed)(nil)
