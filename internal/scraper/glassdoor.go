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

const glassdoorSearchURL = "https://www.glassdoor.com/Job/jobs.htm"

// Glassdoor scrapes the Glassdoor job listing page. Glassdoor blocks
// anonymous traffic aggressively, so this source often returns nothing
// and that is treated as a normal outcome.
type Glassdoor struct {
	client   *http.Client
	maxPages int
	log      *slog.Logger
}

func NewGlassdoor(timeout time.Duration, maxPages int) *Glassdoor {
	if maxPages < 1 {
		maxPages = 2
	}
	return &Glassdoor{
		client:   newHTTPClient(timeout),
		maxPages: maxPages,
		log:      logger.With("scraper.glassdoor"),
	}
}

func (s *Glassdoor) Name() string { return "Glassdoor" }

func (s *Glassdoor) Scrape(ctx context.Context, keywords, location string) ([]domain.JobPosting, error) {
	var jobs []domain.JobPosting

	for page := 0; page < s.maxPages; page++ {
		params := url.Values{}
		params.Set("sc.keyword", keywords)
		params.Set("locT", "C")
		params.Set("locKeyword", location)
		params.Set("fromAge", "1")
		params.Set("p", strconv.Itoa(page+1))

		doc, err := fetchDocument(ctx, s.client, glassdoorSearchURL+"?"+params.Encode())
		if err != nil {
			s.log.Warn("page fetch failed", "page", page, "error", err)
			break
		}

		jobs = append(jobs, ParseGlassdoorJobs(doc)...)

		if page < s.maxPages-1 {
			politeDelay(ctx, 2*time.Second, 4*time.Second)
		}
	}

	return jobs, nil
}

// ParseGlassdoorJobs extracts postings from a listing page. At most 20
// cards per page are read.
func ParseGlassdoorJobs(doc *goquery.Document) []domain.JobPosting {
	var jobs []domain.JobPosting

	doc.Find("li.react-job-listing").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= 20 {
			return false
		}

		href, _ := card.Find("a").First().Attr("href")
		if href != "" {
			href = "https://www.glassdoor.com" + href
		}

		jobs = append(jobs, domain.JobPosting{
			Company:    textOr(card.Find("[data-test='employer-name']"), "N/A"),
			Title:      textOr(card.Find("[data-test='job-title']"), "N/A"),
			Location:   textOr(card.Find("[data-test='emp-location']"), "N/A"),
			DatePosted: "Recent",
			URL:        href,
			Platform:   "Glassdoor",
			Salary:     textOr(card.Find("[data-test='detailSalary']"), ""),
		})
		return true
	})

	return jobs
}

var _ domain.PostingSource = (*Glassdoor)(nil)
