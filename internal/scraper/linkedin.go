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

const linkedInSearchURL = "https://www.linkedin.com/jobs/search"

// LinkedIn scrapes the public LinkedIn jobs search. Full access requires
// authentication, so this only sees the anonymous result cards.
type LinkedIn struct {
	client   *http.Client
	maxPages int
	log      *slog.Logger
}

func NewLinkedIn(timeout time.Duration, maxPages int) *LinkedIn {
	if maxPages < 1 {
		maxPages = 2
	}
	return &LinkedIn{
		client:   newHTTPClient(timeout),
		maxPages: maxPages,
		log:      logger.With("scraper.linkedin"),
	}
}

func (s *LinkedIn) Name() string { return "LinkedIn" }

func (s *LinkedIn) Scrape(ctx context.Context, keywords, location string) ([]domain.JobPosting, error) {
	var jobs []domain.JobPosting

	for page := 0; page < s.maxPages; page++ {
		params := url.Values{}
		params.Set("keywords", keywords)
		params.Set("location", location)
		params.Set("f_TPR", "r86400") // past 24 hours
		params.Set("f_JT", "F")       // full-time
		params.Set("start", strconv.Itoa(page*25))

		doc, err := fetchDocument(ctx, s.client, linkedInSearchURL+"?"+params.Encode())
		if err != nil {
			s.log.Warn("page fetch failed", "page", page, "error", err)
			break
		}

		jobs = append(jobs, ParseLinkedInJobs(doc)...)

		if page < s.maxPages-1 {
			politeDelay(ctx, 2*time.Second, 4*time.Second)
		}
	}

	return jobs, nil
}

// ParseLinkedInJobs extracts postings from an anonymous search result page.
// At most 10 cards per page are read to keep the footprint small.
func ParseLinkedInJobs(doc *goquery.Document) []domain.JobPosting {
	var jobs []domain.JobPosting

	doc.Find("div.base-card").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= 10 {
			return false
		}

		jobURL, _ := card.Find("a.base-card__full-link").First().Attr("href")
		jobs = append(jobs, domain.JobPosting{
			Company:    textOr(card.Find("h4.base-search-card__subtitle"), "N/A"),
			Title:      textOr(card.Find("h3.base-search-card__title"), "N/A"),
			Location:   textOr(card.Find("span.job-search-card__location"), "N/A"),
			DatePosted: "Recent",
			URL:        jobURL,
			Platform:   "LinkedIn",
			JobType:    "Full-time",
		})
		return true
	})

	return jobs
}

var _ domain.PostingSource = (*LinkedIn)(nil)
