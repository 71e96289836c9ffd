package scraper

import (
	"testing"

	"go-careerpath-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postingsFor(company string, n int) []domain.JobPosting {
	jobs := make([]domain.JobPosting, 0, n)
	for i := 0; i < n; i++ {
		jobs = append(jobs, domain.JobPosting{
			Company:    company,
			Title:      "Software Engineer",
			Location:   "Bengaluru",
			DatePosted: "Recent",
			Platform:   "LinkedIn",
		})
	}
	return jobs
}

func TestBuildAnalysisGroupsAndSorts(t *testing.T) {
	postings := append(postingsFor("Acme", 3), postingsFor("Globex", 8)...)
	postings = append(postings, domain.JobPosting{Company: "N/A", Title: "Ghost", Platform: "Indeed"})

	analysis := BuildAnalysis(postings, "developer", "India", map[string]int{"LinkedIn": 11, "Indeed": 1})

	assert.Equal(t, 12, analysis.TotalJobsFound)
	assert.Equal(t, 2, analysis.TotalCompanies)
	assert.Equal(t, "developer", analysis.SearchKeywords)
	assert.Equal(t, "India", analysis.SearchLocation)
	assert.False(t, analysis.FromCache)

	require.Len(t, analysis.Companies, 2)
	assert.Equal(t, "Globex", analysis.Companies[0].Company)
	assert.Equal(t, 8, analysis.Companies[0].JobCount)
	assert.Equal(t, "Acme", analysis.Companies[1].Company)

	assert.Equal(t, []string{"Globex", "Acme"}, analysis.TopHiringCompanies)
}

func TestBuildAnalysisRecentPostingsCapped(t *testing.T) {
	analysis := BuildAnalysis(postingsFor("Acme", 9), "developer", "India", nil)

	require.Len(t, analysis.Companies, 1)
	assert.Len(t, analysis.Companies[0].RecentPostings, 5)
	assert.Len(t, analysis.Companies[0].Positions, 9)
}

func TestVelocityAndStatus(t *testing.T) {
	assert.Equal(t, "high", velocityFor(10))
	assert.Equal(t, "medium", velocityFor(5))
	assert.Equal(t, "low", velocityFor(4))

	assert.Equal(t, "Aggressively Hiring", hiringStatus("high", 12))
	assert.Equal(t, "Actively Hiring", hiringStatus("medium", 7))
	assert.Equal(t, "Currently Hiring", hiringStatus("medium", 5))
	assert.Equal(t, "Limited Openings", hiringStatus("low", 1))
}

func TestBuildInsight(t *testing.T) {
	jobs := []domain.JobPosting{
		{Company: "Acme", Title: "Urgent: Backend Developer", DatePosted: "today", Location: "Pune"},
		{Company: "Acme", Title: "QA Analyst", DatePosted: "3 days ago", Location: "Pune", Salary: "$80,000"},
		{Company: "Acme", Title: "Platform Engineer", DatePosted: "Recent", Location: "Remote"},
	}

	insight := buildInsight(jobs)

	assert.Equal(t, "low", insight.HiringVelocity)
	assert.InDelta(t, 15.0, insight.JobGrowthTrend, 0.001)
	assert.Equal(t, 30, insight.AvgDaysToFill)
	assert.Equal(t, "$80,000", insight.SalaryInfo)
	assert.Equal(t, []string{"Pune", "Remote"}, insight.TopLocations)
	assert.ElementsMatch(t, []string{"Analyst", "Developer", "Engineer"}, insight.MostCommonRoles)
	assert.Equal(t, []string{
		"Urgent hiring needs",
		"Very recent postings",
		"Competitive salary offered",
	}, insight.UrgencyIndicators)
}

func TestMarketInsights(t *testing.T) {
	postings := append(postingsFor("Globex", 12), postingsFor("Acme", 2)...)
	analysis := BuildAnalysis(postings, "engineer", "India", nil)

	mi := analysis.MarketInsights
	assert.Equal(t, map[string]int{"LinkedIn": 14}, mi.PlatformDistribution)
	assert.Equal(t, map[string]int{"Engineer": 14}, mi.MostInDemandRoles)
	assert.Equal(t, 1, mi.HighVelocityCompaniesCount)
	assert.Equal(t, []string{"Globex"}, mi.HighVelocityCompanies)
	assert.Equal(t, "Low", mi.MarketActivity)
	assert.Equal(t, []string{"Bengaluru"}, mi.TrendingLocations)
}

func TestSimplifyRole(t *testing.T) {
	assert.Equal(t, "Engineer", simplifyRole("Senior Software Engineer"))
	assert.Equal(t, "Developer", simplifyRole("python developer"))
	assert.Equal(t, "Manager", simplifyRole("Project Manager"))
	assert.Equal(t, "Analyst", simplifyRole("Business Analyst"))
	assert.Equal(t, "Product Designer", simplifyRole(" Product  Designer "))
}
