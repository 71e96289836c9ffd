package scraper

import (
	"sort"
	"strings"
	"time"

	"go-careerpath-backend/internal/domain"
)

// BuildAnalysis folds raw postings into the per-company and market level
// summaries. Postings with an unknown company are dropped.
func BuildAnalysis(postings []domain.JobPosting, keywords, location string, sourceCounts map[string]int) *domain.HiringAnalysis {
	byCompany := make(map[string][]domain.JobPosting)
	for _, p := range postings {
		name := trimmed(p.Company)
		if name == "" || name == "N/A" {
			continue
		}
		byCompany[name] = append(byCompany[name], p)
	}

	companies := make([]domain.CompanyReport, 0, len(byCompany))
	for name, jobs := range byCompany {
		companies = append(companies, buildCompanyReport(name, jobs))
	}

	sort.Slice(companies, func(i, j int) bool {
		if companies[i].JobCount != companies[j].JobCount {
			return companies[i].JobCount > companies[j].JobCount
		}
		si, sj := velocityScore(companies[i].Insight.HiringVelocity), velocityScore(companies[j].Insight.HiringVelocity)
		if si != sj {
			return si > sj
		}
		return companies[i].Company < companies[j].Company
	})

	top := make([]string, 0, 10)
	for _, c := range companies {
		if len(top) == 10 {
			break
		}
		top = append(top, c.Company)
	}

	return &domain.HiringAnalysis{
		TotalJobsFound:     len(postings),
		TotalCompanies:     len(companies),
		SearchKeywords:     keywords,
		SearchLocation:     location,
		AnalysisDate:       time.Now().UTC(),
		Companies:          companies,
		TopHiringCompanies: top,
		MarketInsights:     buildMarketInsights(postings, companies),
		SourceCounts:       sourceCounts,
	}
}

func buildCompanyReport(name string, jobs []domain.JobPosting) domain.CompanyReport {
	positions := make([]string, 0, len(jobs))
	locationSet := make(map[string]struct{})
	platformSet := make(map[string]struct{})
	for _, j := range jobs {
		positions = append(positions, j.Title)
		if loc := trimmed(j.Location); loc != "" && loc != "N/A" {
			locationSet[loc] = struct{}{}
		}
		platformSet[j.Platform] = struct{}{}
	}

	recent := jobs
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return domain.CompanyReport{
		Company:        name,
		JobCount:       len(jobs),
		Positions:      positions,
		Locations:      sortedKeys(locationSet),
		Platforms:      sortedKeys(platformSet),
		RecentPostings: recent,
		Insight:        buildInsight(jobs),
	}
}

func buildInsight(jobs []domain.JobPosting) domain.HiringInsight {
	count := len(jobs)
	velocity := velocityFor(count)

	roleCounts := make(map[string]int)
	for _, j := range jobs {
		roleCounts[simplifyRole(j.Title)]++
	}

	locCounts := make(map[string]int)
	for _, j := range jobs {
		if loc := trimmed(j.Location); loc != "" && loc != "N/A" {
			locCounts[loc]++
		}
	}

	salaryInfo := "Not disclosed"
	for _, j := range jobs {
		if strings.TrimSpace(j.Salary) != "" {
			salaryInfo = j.Salary
			break
		}
	}

	return domain.HiringInsight{
		HiringVelocity:    velocity,
		JobGrowthTrend:    float64(count) * 5.0,
		AvgDaysToFill:     30,
		MostCommonRoles:   topCounted(roleCounts, 3),
		SalaryInfo:        salaryInfo,
		TopLocations:      topCounted(locCounts, 3),
		UrgencyIndicators: urgencyIndicators(jobs),
		HiringStatus:      hiringStatus(velocity, count),
	}
}

func buildMarketInsights(postings []domain.JobPosting, companies []domain.CompanyReport) domain.MarketInsights {
	platformDist := make(map[string]int)
	roleCounts := make(map[string]int)
	locCounts := make(map[string]int)
	for _, p := range postings {
		platformDist[p.Platform]++
		roleCounts[simplifyRole(p.Title)]++
		if loc := trimmed(p.Location); loc != "" && loc != "N/A" {
			locCounts[loc]++
		}
	}

	var highVelocity []string
	for _, c := range companies {
		if c.Insight.HiringVelocity == "high" {
			highVelocity = append(highVelocity, c.Company)
		}
	}

	topRoles := make(map[string]int)
	for _, role := range topCounted(roleCounts, 5) {
		topRoles[role] = roleCounts[role]
	}

	return domain.MarketInsights{
		PlatformDistribution:       platformDist,
		MostInDemandRoles:          topRoles,
		HighVelocityCompaniesCount: len(highVelocity),
		HighVelocityCompanies:      highVelocity,
		MarketActivity:             marketActivity(len(postings)),
		TrendingLocations:          topCounted(locCounts, 5),
	}
}

func velocityFor(count int) string {
	switch {
	case count >= 10:
		return "high"
	case count >= 5:
		return "medium"
	default:
		return "low"
	}
}

func velocityScore(velocity string) int {
	switch velocity {
	case "high":
		return 3
	case "medium":
		return 2
	default:
		return 1
	}
}

func hiringStatus(velocity string, count int) string {
	switch {
	case velocity == "high" && count >= 10:
		return "Aggressively Hiring"
	case velocity == "high" || count >= 7:
		return "Actively Hiring"
	case velocity == "medium" || count >= 3:
		return "Currently Hiring"
	default:
		return "Limited Openings"
	}
}

func marketActivity(totalJobs int) string {
	switch {
	case totalJobs > 50:
		return "High"
	case totalJobs > 20:
		return "Medium"
	default:
		return "Low"
	}
}

func urgencyIndicators(jobs []domain.JobPosting) []string {
	indicators := make([]string, 0, 3)
	seen := make(map[string]struct{})
	add := func(indicator string) {
		if _, ok := seen[indicator]; ok {
			return
		}
		seen[indicator] = struct{}{}
		indicators = append(indicators, indicator)
	}

	for _, j := range jobs {
		title := strings.ToLower(j.Title)
		if strings.Contains(title, "urgent") || strings.Contains(title, "immediate") || strings.Contains(title, "asap") {
			add("Urgent hiring needs")
		}
		date := strings.ToLower(j.DatePosted)
		if strings.Contains(date, "today") || strings.Contains(date, "1 day") {
			add("Very recent postings")
		}
		if strings.Contains(j.Salary, "$") {
			add("Competitive salary offered")
		}
	}

	return indicators
}

// simplifyRole buckets job titles into coarse role families so counts
// aggregate across wording variants.
func simplifyRole(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "engineer"):
		return "Engineer"
	case strings.Contains(t, "developer"):
		return "Developer"
	case strings.Contains(t, "manager"):
		return "Manager"
	case strings.Contains(t, "analyst"):
		return "Analyst"
	default:
		return trimmed(title)
	}
}

// topCounted returns up to n keys ordered by count descending, ties
// broken alphabetically for stable output.
func topCounted(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
