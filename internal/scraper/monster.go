package scraper

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

const monsterSearchURL = "https://www.monster.com/jobs/search"

// Monster scrapes a single Monster search result page.
type Monster struct {
	client *http.Client
	log    *slog.Logger
}

func NewMonster(timeout time.Duration) *Monster {
	return &Monster{
		client: newHTTPClient(timeout),
		log:    logger.With("scraper.monster"),
	}
}

func (s *Monster) Name() string { return "Monster" }

func (s *Monster) Scrape(ctx context.Context, keywords, location string) ([]domain.JobPosting, error) {
	params := url.Values{}
	params.Set("q", keywords)
	params.Set("where", location)
	params.Set("tm", "1") // posted within 1 day

	doc, err := fetchDocument(ctx, s.client, monsterSearchURL+"?"+params.Encode())
	if err != nil {
		s.log.Warn("page fetch failed", "error", err)
		return nil, nil
	}

	return ParseMonsterJobs(doc), nil
}

// ParseMonsterJobs extracts postings from a search result page.
func ParseMonsterJobs(doc *goquery.Document) []domain.JobPosting {
	var jobs []domain.JobPosting

	doc.Find("section.card-content").Each(func(_ int, card *goquery.Selection) {
		titleLink := card.Find("h2.title a").First()
		if titleLink.Length() == 0 {
			return
		}
		href, _ := titleLink.Attr("href")

		jobs = append(jobs, domain.JobPosting{
			Company:    textOr(card.Find("div.company span"), "N/A"),
			Title:      textOr(titleLink, "N/A"),
			Location:   textOr(card.Find("div.location span"), "N/A"),
			DatePosted: textOr(card.Find("time"), "Recent"),
			URL:        href,
			Platform:   "Monster",
		})
	})

	return jobs
}

var _ domain.PostingSource = (*Monster)(nil)
