package extractor

import (
	"testing"

	"go-careerpath-backend/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	e := New(catalog.New())

	cases := map[string]string{
		"python":              "Python",
		"js":                  "JavaScript",
		"javascript":          "JavaScript",
		"typescript":          "TypeScript",
		"reactjs":             "React",
		"vue.js":              "Vue",
		"aws":                 "Amazon Web Services",
		"gcp":                 "Google Cloud",
		"postgres":            "PostgreSQL",
		"rest":                "REST",
		"css":                 "CSS",
		"c#":                  "C#",
		"c++":                 "C++",
		"asp.net":             "ASP.NET",
		"scikit-learn":        "Scikit-Learn",
		"objective-c":         "Objective-C",
		"spring boot":         "Spring Boot",
		"amazon web services": "Amazon Web Services",
		"node.js":             "Node.js",
	}
	for input, want := range cases {
		assert.Equal(t, want, e.normalize(input), "input %q", input)
	}
}

func TestNormalizeTrimsAndLowercases(t *testing.T) {
	e := New(catalog.New())
	assert.Equal(t, "Python", e.normalize("  PyThOn  "))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Django", capitalize("django"))
	assert.Equal(t, "Html5", capitalize("HTML5"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, ".net", capitalize(".NET"))
}
