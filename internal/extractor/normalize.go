package extractor

import "strings"

// Tokens upper-cased wholesale instead of title-cased.
var acronyms = map[string]bool{
	"js": true, "css": true, "html": true, "api": true, "rest": true,
	"grpc": true, "graphql": true, "aws": true, "gcp": true, "azure": true,
	"ios": true, "iot": true, "ai": true, "ml": true, "nlp": true,
	"cv": true, "ci": true, "cd": true, "devops": true, "sql": true,
	"php": true,
}

// Terms with fixed internal capitalization that plain title-casing would
// get wrong. Casing follows the role requirement tables so extracted names
// resolve during gap scoring.
var properCased = map[string]string{
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"c#":         "C#",
	"c++":        "C++",
	".net":       ".NET",
	"asp.net":    "ASP.NET",
	"mysql":      "MySQL",
	"postgresql": "PostgreSQL",
	"mongodb":    "MongoDB",
	"sqlite":     "SQLite",
	"mariadb":    "MariaDB",
	"dynamodb":   "DynamoDB",
	"tensorflow": "TensorFlow",
	"pytorch":    "PyTorch",
	"numpy":      "NumPy",
	"matlab":     "MATLAB",
	"github":     "GitHub",
	"junit":      "JUnit",
}

// normalize maps a raw lowercase match to its canonical display name:
// alias lookup first, then title-casing with acronym and proper-case
// exceptions; hyphenated tokens capitalize each segment independently.
func (e *Extractor) normalize(skill string) string {
	skill = strings.TrimSpace(strings.ToLower(skill))

	if canonical, ok := e.aliases[skill]; ok {
		skill = canonical
	}
	if fixed, ok := properCased[skill]; ok {
		return fixed
	}

	parts := strings.Fields(skill)
	for i, part := range parts {
		switch {
		case acronyms[part]:
			parts[i] = strings.ToUpper(part)
		case properCased[part] != "":
			parts[i] = properCased[part]
		case strings.Contains(part, "-"):
			segments := strings.Split(part, "-")
			for j, seg := range segments {
				segments[j] = capitalize(seg)
			}
			parts[i] = strings.Join(segments, "-")
		default:
			parts[i] = capitalize(part)
		}
	}
	return strings.Join(parts, " ")
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
