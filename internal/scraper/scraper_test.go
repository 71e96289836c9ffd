package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseLinkedInJobs(t *testing.T) {
	doc := docFromHTML(t, `
		<div class="base-card">
			<h3 class="base-search-card__title"> Senior Go Developer </h3>
			<h4 class="base-search-card__subtitle">Acme Corp</h4>
			<span class="job-search-card__location">Bengaluru, India</span>
			<a class="base-card__full-link" href="https://www.linkedin.com/jobs/view/123"></a>
		</div>
		<div class="base-card">
			<h3 class="base-search-card__title">Backend Engineer</h3>
			<h4 class="base-search-card__subtitle">Globex</h4>
			<span class="job-search-card__location">Remote</span>
		</div>`)

	jobs := ParseLinkedInJobs(doc)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Senior Go Developer", jobs[0].Title)
	assert.Equal(t, "Acme Corp", jobs[0].Company)
	assert.Equal(t, "Bengaluru, India", jobs[0].Location)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/123", jobs[0].URL)
	assert.Equal(t, "LinkedIn", jobs[0].Platform)
	assert.Equal(t, "Full-time", jobs[0].JobType)

	assert.Equal(t, "Globex", jobs[1].Company)
	assert.Empty(t, jobs[1].URL)
}

func TestParseLinkedInJobsCapsAtTenPerPage(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 15; i++ {
		sb.WriteString(`<div class="base-card"><h3 class="base-search-card__title">Dev</h3></div>`)
	}

	jobs := ParseLinkedInJobs(docFromHTML(t, sb.String()))
	assert.Len(t, jobs, 10)
}

func TestParseLinkedInJobsMissingFields(t *testing.T) {
	doc := docFromHTML(t, `<div class="base-card"></div>`)

	jobs := ParseLinkedInJobs(doc)
	require.Len(t, jobs, 1)
	assert.Equal(t, "N/A", jobs[0].Company)
	assert.Equal(t, "N/A", jobs[0].Title)
	assert.Equal(t, "N/A", jobs[0].Location)
}

func TestParseIndeedJobs(t *testing.T) {
	doc := docFromHTML(t, `
		<div class="job_seen_beacon">
			<h2 class="jobTitle"><a href="/viewjob?jk=abc">Python Developer</a></h2>
			<span class="companyName">Initech</span>
			<div class="companyLocation">Pune, India</div>
			<span class="date">Posted today</span>
			<span class="estimated-salary">$90,000 a year</span>
		</div>`)

	jobs := ParseIndeedJobs(doc)
	require.Len(t, jobs, 1)

	assert.Equal(t, "Python Developer", jobs[0].Title)
	assert.Equal(t, "Initech", jobs[0].Company)
	assert.Equal(t, "Pune, India", jobs[0].Location)
	assert.Equal(t, "Posted today", jobs[0].DatePosted)
	assert.Equal(t, "https://www.indeed.com/viewjob?jk=abc", jobs[0].URL)
	assert.Equal(t, "Indeed", jobs[0].Platform)
	assert.Equal(t, "$90,000 a year", jobs[0].Salary)
}

func TestParseGlassdoorJobs(t *testing.T) {
	doc := docFromHTML(t, `
		<li class="react-job-listing">
			<a href="/partner/jobListing.htm?id=1"></a>
			<span data-test="employer-name">Umbrella</span>
			<span data-test="job-title">Data Engineer</span>
			<span data-test="emp-location">Hyderabad</span>
			<span data-test="detailSalary">₹20L - ₹30L</span>
		</li>`)

	jobs := ParseGlassdoorJobs(doc)
	require.Len(t, jobs, 1)

	assert.Equal(t, "Umbrella", jobs[0].Company)
	assert.Equal(t, "Data Engineer", jobs[0].Title)
	assert.Equal(t, "Hyderabad", jobs[0].Location)
	assert.Equal(t, "https://www.glassdoor.com/partner/jobListing.htm?id=1", jobs[0].URL)
	assert.Equal(t, "Glassdoor", jobs[0].Platform)
}

func TestParseMonsterJobs(t *testing.T) {
	doc := docFromHTML(t, `
		<section class="card-content">
			<h2 class="title"><a href="https://www.monster.com/job/1">DevOps Engineer</a></h2>
			<div class="company"><span>Stark Industries</span></div>
			<div class="location"><span>Chennai</span></div>
			<time>2 days ago</time>
		</section>
		<section class="card-content"><p>ad placeholder</p></section>`)

	jobs := ParseMonsterJobs(doc)
	require.Len(t, jobs, 1)

	assert.Equal(t, "DevOps Engineer", jobs[0].Title)
	assert.Equal(t, "Stark Industries", jobs[0].Company)
	assert.Equal(t, "Chennai", jobs[0].Location)
	assert.Equal(t, "2 days ago", jobs[0].DatePosted)
}

func TestTrimmed(t *testing.T) {
	assert.Equal(t, "Senior Go Developer", trimmed("  Senior \n\t Go   Developer "))
	assert.Equal(t, "", trimmed("   \n "))
}
