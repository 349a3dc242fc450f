package constants

// DefaultSkillLevels maps a canonical skill name (lowercase) to its
// qualification-framework level. Injected into the inferencer at construction
// so tests can substitute alternate tables.
var DefaultSkillLevels = map[string]int{
	"python":           5,
	"javascript":       5,
	"react":            6,
	"data science":     7,
	"machine learning": 8,
	"management":       7,
	"cloud":            6,
	"cybersecurity":    8,
}

// MinSkillLevel is the floor for inferred levels; unknown skills contribute it.
const MinSkillLevel = 1
