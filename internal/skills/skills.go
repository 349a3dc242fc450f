// Package skills maps credential text and user-declared skills to a canonical
// skill set and a qualification-framework level.
package skills

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/microcred/credential-vault/constants"
)

// Profile is the inference result: canonical skill names plus the aggregated
// level. Level never goes below constants.MinSkillLevel.
type Profile struct {
	Skills []string
	Level  int
}

// Inferencer derives skill profiles from extracted text and declared inputs.
// The skill->level table is injected at construction so tests can substitute
// alternate tables without touching process-wide state.
type Inferencer struct {
	table map[string]int
}

func NewInferencer(table map[string]int) *Inferencer {
	if table == nil {
		table = constants.DefaultSkillLevels
	}
	// private copy; the inferencer's table is immutable after construction
	own := make(map[string]int, len(table))
	for k, v := range table {
		own[strings.ToLower(k)] = v
	}
	return &Inferencer{table: own}
}

// ParseDeclared accepts either a JSON-encoded string list or a comma-separated
// string and returns the cleaned skill list. Falls back to comma-split when
// JSON decoding fails. Empty input yields nil.
func ParseDeclared(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return clean(parsed)
	}
	return clean(strings.Split(raw, ","))
}

func clean(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Infer computes the skill profile. When declared skills are present they are
// used verbatim as the canonical set; otherwise the lowercase extracted text
// is scanned for every table key (substring containment). The level is the
// max over table lookups of the skill set and the declared level, with
// unknown skills contributing the minimum level.
func (i *Inferencer) Infer(extractedText string, declared []string, declaredLevel int) Profile {
	var set []string
	if len(declared) > 0 {
		set = clean(declared)
	} else {
		textLower := strings.ToLower(extractedText)
		for key := range i.table {
			if strings.Contains(textLower, key) {
				set = append(set, key)
			}
		}
	}

	level := constants.MinSkillLevel
	if declaredLevel > level {
		level = declaredLevel
	}
	for _, s := range set {
		lvl, ok := i.table[strings.ToLower(s)]
		if !ok {
			lvl = constants.MinSkillLevel
		}
		if lvl > level {
			level = lvl
		}
	}

	sort.Strings(set)
	return Profile{Skills: set, Level: level}
}
