// Package extractor turns unstructured resume text into a deduplicated set
// of canonical skill names from the static vocabulary.
package extractor

import (
	"regexp"
	"sort"
	"strings"

	"go-careerpath-backend/internal/catalog"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	urlPattern   = regexp.MustCompile(`https?://\S+|www\.\S+`)
	phonePattern = regexp.MustCompile(`\b(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)
)

// Extractor scans text for vocabulary terms. Build one at startup and share
// it: the compiled alternation is immutable and safe for concurrent use.
type Extractor struct {
	aliases      map[string]string
	skillPattern *regexp.Regexp
}

// New compiles the vocabulary into a single case-insensitive, word-bounded
// alternation. Terms are ordered longest-first so "react native" is matched
// before "react" ever gets a chance.
func New(cat *catalog.Catalog) *Extractor {
	terms := cat.AllSkillTerms()
	escaped := make([]string, len(terms))
	for i, term := range terms {
		escaped[i] = regexp.QuoteMeta(term)
	}

	return &Extractor{
		aliases:      cat.Aliases,
		skillPattern: regexp.MustCompile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`),
	}
}

// CleanText strips personally identifying noise (emails, URLs, phone
// numbers) and collapses runs of whitespace to single spaces.
func (e *Extractor) CleanText(text string) string {
	text = emailPattern.ReplaceAllString(text, "")
	text = urlPattern.ReplaceAllString(text, "")
	text = phonePattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// ExtractSkills returns the sorted, deduplicated canonical skill names
// mentioned in text. Empty or unmatchable text yields an empty set, never
// an error. The result is deterministic for identical input.
func (e *Extractor) ExtractSkills(text string) []string {
	skills := []string{}
	if strings.TrimSpace(text) == "" {
		return skills
	}

	cleaned := strings.ToLower(e.CleanText(text))

	seen := make(map[string]bool)
	for _, match := range e.skillPattern.FindAllString(cleaned, -1) {
		canonical := e.normalize(match)
		if !seen[canonical] {
			seen[canonical] = true
			skills = append(skills, canonical)
		}
	}

	sort.Strings(skills)
	return skills
}
