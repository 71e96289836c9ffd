package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/internal/export"
	"go-careerpath-backend/internal/scraper"
	"go-careerpath-backend/pkg/apperror"
	"go-careerpath-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type hiringUsecase struct {
	sources  []domain.PostingSource
	cache    *redis.Client
	cacheTTL time.Duration
	log      *slog.Logger
}

// NewHiringUsecase wires the job-board sources and an optional result
// cache. A nil cache client disables caching.
func NewHiringUsecase(sources []domain.PostingSource, cache *redis.Client, cacheTTL time.Duration) domain.HiringUsecase {
	return &hiringUsecase{
		sources:  sources,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      logger.With("usecase.hiring"),
	}
}

// AnalyzeHiringCompanies scrapes every configured source concurrently and
// folds the postings into company and market summaries. Sources fail
// independently: one board going dark still leaves the rest of the
// analysis usable.
func (u *hiringUsecase) AnalyzeHiringCompanies(ctx context.Context, keywords, location string) (*domain.HiringAnalysis, error) {
	keywords = strings.TrimSpace(keywords)
	location = strings.TrimSpace(location)
	if keywords == "" || location == "" {
		return nil, apperror.BadRequest("Keywords and location are required")
	}

	if cached := u.fromCache(ctx, keywords, location); cached != nil {
		return cached, nil
	}

	type result struct {
		source string
		jobs   []domain.JobPosting
	}

	results := make([]result, len(u.sources))
	var wg sync.WaitGroup
	for i, source := range u.sources {
		wg.Add(1)
		go func(i int, source domain.PostingSource) {
			defer wg.Done()
			jobs, err := source.Scrape(ctx, keywords, location)
			if err != nil {
				u.log.Warn("source scrape failed", "source", source.Name(), "error", err)
			}
			results[i] = result{source: source.Name(), jobs: jobs}
		}(i, source)
	}
	wg.Wait()

	var postings []domain.JobPosting
	sourceCounts := make(map[string]int, len(u.sources))
	for _, r := range results {
		postings = append(postings, r.jobs...)
		sourceCounts[r.source] = len(r.jobs)
	}

	analysis := scraper.BuildAnalysis(postings, keywords, location, sourceCounts)
	u.toCache(ctx, keywords, location, analysis)
	return analysis, nil
}

// ExportHiringCompanies runs the analysis and renders it as an xlsx
// workbook, returning the bytes and a suggested filename.
func (u *hiringUsecase) ExportHiringCompanies(ctx context.Context, keywords, location string) ([]byte, string, error) {
	analysis, err := u.AnalyzeHiringCompanies(ctx, keywords, location)
	if err != nil {
		return nil, "", err
	}

	data, err := export.HiringReportToExcel(analysis)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	filename := fmt.Sprintf("hiring_companies_%s.xlsx", analysis.AnalysisDate.Format("20060102_150405"))
	return data, filename, nil
}

func cacheKey(keywords, location string) string {
	return fmt.Sprintf("hiring:%s:%s", strings.ToLower(keywords), strings.ToLower(location))
}

func (u *hiringUsecase) fromCache(ctx context.Context, keywords, location string) *domain.HiringAnalysis {
	if u.cache == nil {
		return nil
	}

	raw, err := u.cache.Get(ctx, cacheKey(keywords, location)).Bytes()
	if err != nil {
		if err != redis.Nil {
			u.log.Warn("hiring cache read failed", "error", err)
		}
		return nil
	}

	var analysis domain.HiringAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		u.log.Warn("hiring cache entry corrupt", "error", err)
		return nil
	}
	analysis.FromCache = true
	return &analysis
}

func (u *hiringUsecase) toCache(ctx context.Context, keywords, location string, analysis *domain.HiringAnalysis) {
	if u.cache == nil {
		return
	}

	raw, err := json.Marshal(analysis)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, cacheKey(keywords, location), raw, u.cacheTTL).Err(); err != nil {
		u.log.Warn("hiring cache write failed", "error", err)
	}
}
