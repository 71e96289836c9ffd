// Package catalog holds the static tables the extraction/scoring pipeline
// runs against: the skill vocabulary, the alias normalization map, the role
// requirement profiles and the job opening catalogue. Everything here is
// immutable after New and injected where needed; nothing writes to it at
// request time.
package catalog

import (
	"sort"
	"strings"

	"go-careerpath-backend/internal/domain"
)

// DefaultRole is analyzed when a gap request names an unknown title.
const DefaultRole = "Python Developer"

type Catalog struct {
	// Vocabulary maps category name to the raw skill surface forms the
	// extractor scans for.
	Vocabulary map[string][]string
	// Aliases maps lowercase variations to their canonical surface form.
	Aliases map[string]string
	// Roles maps job title to its requirement profile.
	Roles map[string]domain.RoleProfile
	// RoleTitles preserves the declaration order of Roles.
	RoleTitles []string
	// Openings is the static catalogue scored for recommendations.
	Openings []domain.JobOpening
	// SelectableSkills backs the profile skill picker, grouped IT / Non-IT.
	SelectableSkills map[domain.SkillType]map[string][]string
	// HighPriority marks skills whose improvement suggestions rank "High".
	HighPriority map[string]bool
}

func New() *Catalog {
	roles, titles := roleProfiles()
	return &Catalog{
		Vocabulary: skillVocabulary(),
		Aliases:    skillAliases(),
		Roles:      roles,
		RoleTitles: titles,
		Openings:   jobOpenings(),
		SelectableSkills: map[domain.SkillType]map[string][]string{
			domain.SkillTypeIT:    itSkillGroups(),
			domain.SkillTypeNonIT: nonITSkillGroups(),
		},
		HighPriority: map[string]bool{
			"Python":     true,
			"JavaScript": true,
			"React":      true,
			"AWS":        true,
		},
	}
}

// Role resolves a title against the requirement table.
func (c *Catalog) Role(title string) (domain.RoleProfile, bool) {
	role, ok := c.Roles[title]
	return role, ok
}

// AllSkillTerms flattens the vocabulary across categories, deduplicated and
// sorted by descending length so multi-word terms win over contained ones.
// Equal lengths fall back to lexicographic order to keep the result stable.
func (c *Catalog) AllSkillTerms() []string {
	seen := make(map[string]bool)
	var terms []string
	for _, category := range c.Vocabulary {
		for _, term := range category {
			t := strings.ToLower(term)
			if !seen[t] {
				seen[t] = true
				terms = append(terms, t)
			}
		}
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	return terms
}
