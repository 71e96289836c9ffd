package export

import (
	"bytes"
	"fmt"
	"strings"

	"go-careerpath-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

// HiringReportToExcel renders a hiring analysis as an xlsx workbook and
// returns the file bytes.
func HiringReportToExcel(analysis *domain.HiringAnalysis) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Summary"
	companiesSheet := "Hiring Companies"
	marketSheet := "Market Insights"

	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(companiesSheet)
	f.NewSheet(marketSheet)

	if err := writeSummarySheet(f, summarySheet, analysis); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeCompaniesSheet(f, companiesSheet, analysis.Companies); err != nil {
		return nil, fmt.Errorf("failed to create companies sheet: %w", err)
	}
	if err := writeMarketSheet(f, marketSheet, analysis.MarketInsights); err != nil {
		return nil, fmt.Errorf("failed to create market sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
}

func writeSummarySheet(f *excelize.File, sheetName string, analysis *domain.HiringAnalysis) error {
	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 50)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	row := 1
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Hiring Companies Report")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), header)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row += 2

	labeled := func(label string, value interface{}) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), label)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), value)
		row++
	}

	labeled("Search Keywords:", analysis.SearchKeywords)
	labeled("Search Location:", analysis.SearchLocation)
	labeled("Generated:", analysis.AnalysisDate.Format("2006-01-02 15:04:05"))
	labeled("Total Jobs Found:", analysis.TotalJobsFound)
	labeled("Total Companies:", analysis.TotalCompanies)
	row++

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Jobs Per Source:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), header)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row++
	for _, source := range sortedCountKeys(analysis.SourceCounts) {
		labeled(source+":", analysis.SourceCounts[source])
	}
	row++

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Top Hiring Companies:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), header)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row++
	for i, name := range analysis.TopHiringCompanies {
		labeled(fmt.Sprintf("#%d:", i+1), name)
	}

	return nil
}

func writeCompaniesSheet(f *excelize.File, sheetName string, companies []domain.CompanyReport) error {
	widths := []struct {
		col   string
		width float64
	}{
		{"A", 8}, {"B", 28}, {"C", 10}, {"D", 14}, {"E", 20},
		{"F", 30}, {"G", 26}, {"H", 20}, {"I", 30},
	}
	for _, w := range widths {
		f.SetColWidth(sheetName, w.col, w.col, w.width)
	}

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	highStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C6EFCE"}, Pattern: 1},
	})
	mediumStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFEB9C"}, Pattern: 1},
	})

	headers := []string{
		"Rank", "Company", "Jobs", "Velocity", "Hiring Status",
		"Top Roles", "Locations", "Platforms", "Urgency Indicators",
	}
	for col, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, header)
	}

	for i, c := range companies {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), c.Company)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), c.JobCount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), c.Insight.HiringVelocity)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), c.Insight.HiringStatus)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), strings.Join(c.Insight.MostCommonRoles, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), strings.Join(c.Locations, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), strings.Join(c.Platforms, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), strings.Join(c.Insight.UrgencyIndicators, "; "))

		switch c.Insight.HiringVelocity {
		case "high":
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), highStyle)
		case "medium":
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), mediumStyle)
		}
	}

	if len(companies) > 0 {
		f.AutoFilter(sheetName, fmt.Sprintf("A1:I%d", len(companies)+1), []excelize.AutoFilterOptions{})
	}
	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	return nil
}

func writeMarketSheet(f *excelize.File, sheetName string, mi domain.MarketInsights) error {
	f.SetColWidth(sheetName, "A", "A", 32)
	f.SetColWidth(sheetName, "B", "B", 40)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	row := 1
	section := func(title string) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), title)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), header)
		f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
		row++
	}
	pair := func(label string, value interface{}) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), value)
		row++
	}

	section("Market Overview")
	pair("Market Activity", mi.MarketActivity)
	pair("High Velocity Companies", mi.HighVelocityCompaniesCount)
	pair("Trending Locations", strings.Join(mi.TrendingLocations, ", "))
	row++

	section("Platform Distribution")
	for _, platform := range sortedCountKeys(mi.PlatformDistribution) {
		pair(platform, mi.PlatformDistribution[platform])
	}
	row++

	section("Most In-Demand Roles")
	for _, role := range sortedCountKeys(mi.MostInDemandRoles) {
		pair(role, mi.MostInDemandRoles[role])
	}
	row++

	section("High Velocity Companies")
	for _, name := range mi.HighVelocityCompanies {
		pair(name, "high")
	}

	return nil
}
