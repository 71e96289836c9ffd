package domain

import (
	"context"
	"time"
)

// JobPosting is one scraped job-board entry. Best-effort data: any field
// other than Platform may be "N/A" or empty depending on what the board
// happened to render.
type JobPosting struct {
	Company         string `json:"company"`
	Title           string `json:"title"`
	Location        string `json:"location"`
	DatePosted      string `json:"date_posted"`
	URL             string `json:"url"`
	Platform        string `json:"platform"`
	Salary          string `json:"salary,omitempty"`
	JobType         string `json:"job_type,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
}

// HiringInsight is the derived per-company view of its postings.
type HiringInsight struct {
	HiringVelocity    string   `json:"hiring_velocity"` // high / medium / low
	JobGrowthTrend    float64  `json:"job_growth_trend"`
	AvgDaysToFill     int      `json:"avg_days_to_fill"`
	MostCommonRoles   []string `json:"most_common_roles"`
	SalaryInfo        string   `json:"salary_info"`
	TopLocations      []string `json:"top_locations"`
	UrgencyIndicators []string `json:"urgency_indicators"`
	HiringStatus      string   `json:"hiring_status"`
}

// CompanyReport aggregates one company's postings with its insight.
type CompanyReport struct {
	Company        string       `json:"company"`
	JobCount       int          `json:"job_count"`
	Positions      []string     `json:"positions"`
	Locations      []string     `json:"locations"`
	Platforms      []string     `json:"platforms"`
	RecentPostings []JobPosting `json:"recent_postings"`
	Insight        HiringInsight `json:"insight"`
}

// MarketInsights is the cross-company summary of one analysis run.
type MarketInsights struct {
	PlatformDistribution       map[string]int `json:"platform_distribution"`
	MostInDemandRoles          map[string]int `json:"most_in_demand_roles"`
	HighVelocityCompaniesCount int            `json:"high_velocity_companies_count"`
	HighVelocityCompanies      []string       `json:"high_velocity_companies"`
	MarketActivity             string         `json:"market_activity"` // High / Medium / Low
	TrendingLocations          []string       `json:"trending_locations"`
}

// HiringAnalysis is the full result of one hiring-companies analysis.
// Companies is ordered by (job count, velocity) descending.
type HiringAnalysis struct {
	TotalJobsFound     int             `json:"total_jobs_found"`
	TotalCompanies     int             `json:"total_companies"`
	SearchKeywords     string          `json:"search_keywords"`
	SearchLocation     string          `json:"search_location"`
	AnalysisDate       time.Time       `json:"analysis_date"`
	Companies          []CompanyReport `json:"companies"`
	TopHiringCompanies []string        `json:"top_hiring_companies"`
	MarketInsights     MarketInsights  `json:"market_insights"`
	SourceCounts       map[string]int  `json:"source_counts"`
	FromCache          bool            `json:"from_cache"`
}

// PostingSource is one scrapeable job board.
type PostingSource interface {
	Name() string
	Scrape(ctx context.Context, keywords, location string) ([]JobPosting, error)
}

type HiringUsecase interface {
	AnalyzeHiringCompanies(ctx context.Context, keywords, location string) (*HiringAnalysis, error)
	ExportHiringCompanies(ctx context.Context, keywords, location string) ([]byte, string, error)
}
