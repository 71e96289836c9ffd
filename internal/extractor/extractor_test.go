package extractor_test

import (
	"strings"
	"testing"

	"go-careerpath-backend/internal/catalog"
	"go-careerpath-backend/internal/extractor"

	"github.com/stretchr/testify/assert"
)

func newExtractor() *extractor.Extractor {
	return extractor.New(catalog.New())
}

func TestExtractSkillsEmptyInput(t *testing.T) {
	e := newExtractor()

	assert.Empty(t, e.ExtractSkills(""))
	assert.Empty(t, e.ExtractSkills("   \n\t  "))
	assert.Empty(t, e.ExtractSkills("nothing relevant in this sentence"))
}

func TestExtractSkillsIdempotent(t *testing.T) {
	e := newExtractor()
	text := "Built services in Python and Go, deployed with Docker on AWS."

	first := e.ExtractSkills(text)
	second := e.ExtractSkills(text)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestExtractSkillsDeduplicates(t *testing.T) {
	e := newExtractor()
	skills := e.ExtractSkills("python, Python, PYTHON and more python")
	assert.Equal(t, []string{"Python"}, skills)
}

func TestLongestMatchWins(t *testing.T) {
	e := newExtractor()

	skills := e.ExtractSkills("Experienced React Native developer")
	assert.Contains(t, skills, "React Native")
	assert.NotContains(t, skills, "React")
	assert.NotContains(t, skills, "Native")
}

func TestWordBoundaries(t *testing.T) {
	e := newExtractor()

	skills := e.ExtractSkills("Five years of javascript experience")
	assert.Contains(t, skills, "JavaScript")
	assert.NotContains(t, skills, "Java")
}

func TestNormalizationVariants(t *testing.T) {
	e := newExtractor()

	for _, input := range []string{"reactjs", "ReactJS", "REACTJS"} {
		assert.Equal(t, []string{"React"}, e.ExtractSkills(input), "input %q", input)
	}
}

func TestAliasExpansion(t *testing.T) {
	e := newExtractor()

	assert.Equal(t, []string{"Node.js"}, e.ExtractSkills("nodejs backend work"))
	assert.Equal(t, []string{"PostgreSQL"}, e.ExtractSkills("tuning postgres queries"))
	assert.Equal(t, []string{"MongoDB"}, e.ExtractSkills("sharded mongo clusters"))
	assert.Equal(t, []string{"SQL Server"}, e.ExtractSkills("migrated off ms sql server"))
	assert.Equal(t, []string{"JavaScript"}, e.ExtractSkills("vanilla js widgets"))
}

func TestExtractSkillsSorted(t *testing.T) {
	e := newExtractor()

	skills := e.ExtractSkills("docker, aws, python, django")
	sorted := append([]string(nil), skills...)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1], sorted[i])
	}
	assert.Contains(t, skills, "Amazon Web Services") // aws alias
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "Django")
	assert.Contains(t, skills, "Python")
}

func TestCleanTextStripsPII(t *testing.T) {
	e := newExtractor()

	cleaned := e.CleanText("Jane Doe  jane.doe@example.com  +1 555-123-4567  https://janedoe.dev  Python developer")
	assert.NotContains(t, cleaned, "@")
	assert.NotContains(t, cleaned, "janedoe.dev")
	assert.NotContains(t, cleaned, "555-123-4567")
	assert.Contains(t, cleaned, "Python developer")
	assert.False(t, strings.Contains(cleaned, "  "), "whitespace must be collapsed")
}

func TestCleanTextCollapsesWhitespace(t *testing.T) {
	e := newExtractor()
	assert.Equal(t, "a b c", e.CleanText("a\n\n b\t\tc"))
}
