package catalog_test

import (
	"testing"

	"go-careerpath-backend/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSkillTermsLongestFirst(t *testing.T) {
	terms := catalog.New().AllSkillTerms()
	require.NotEmpty(t, terms)

	for i := 1; i < len(terms); i++ {
		assert.GreaterOrEqual(t, len(terms[i-1]), len(terms[i]),
			"terms must be sorted by descending length: %q before %q", terms[i-1], terms[i])
	}
}

func TestAllSkillTermsDeduplicated(t *testing.T) {
	// "swift" and "kotlin" appear in both languages and mobile categories.
	terms := catalog.New().AllSkillTerms()
	seen := make(map[string]int)
	for _, term := range terms {
		seen[term]++
	}
	assert.Equal(t, 1, seen["swift"])
	assert.Equal(t, 1, seen["kotlin"])
}

func TestAllSkillTermsDeterministic(t *testing.T) {
	assert.Equal(t, catalog.New().AllSkillTerms(), catalog.New().AllSkillTerms())
}

func TestDefaultRoleExists(t *testing.T) {
	c := catalog.New()
	role, ok := c.Role(catalog.DefaultRole)
	require.True(t, ok, "default role must always resolve")
	assert.Equal(t, []string{"Python", "Django", "MySQL", "Git", "REST API"}, role.RequiredSkills)
}

func TestRoleTitlesMatchTable(t *testing.T) {
	c := catalog.New()
	assert.Len(t, c.RoleTitles, len(c.Roles))
	for _, title := range c.RoleTitles {
		_, ok := c.Role(title)
		assert.True(t, ok, "title %q listed but not resolvable", title)
	}
}

// Every skill referenced by an opening must resolve in at least one role
// profile, so recommendation matches always have a gap analysis to point at.
func TestOpeningSkillsCoveredByRoles(t *testing.T) {
	c := catalog.New()
	known := make(map[string]bool)
	for _, role := range c.Roles {
		for _, s := range role.RequiredSkills {
			known[s] = true
		}
		for _, s := range role.PreferredSkills {
			known[s] = true
		}
	}
	for _, opening := range c.Openings {
		for _, s := range opening.Skills {
			assert.True(t, known[s], "opening %q uses skill %q absent from all role profiles", opening.Title, s)
		}
	}
}
