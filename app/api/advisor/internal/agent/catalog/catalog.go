package catalog

import (
	"encoding/json"
	"strings"

	"FinNavi/app/dal/bank"
)

// Entry is one eligibility criterion: a stable key, the substring patterns
// that mark it as present in a product's raw condition text, the question to
// pose to the user, and an optional explanation shown on confusion.
type Entry struct {
	Key      string
	Patterns []string
	Question string
	Explain  string
}

// Catalog is an ordered list of entries. Order is significant: matchers and
// question pickers iterate it front to back.
type Catalog []Entry

func (c Catalog) Find(key string) (Entry, bool) {
	for _, e := range c {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// FromRows converts store rows into a catalog, dropping entries whose pattern
// list is empty or unparsable — an active entry without patterns can never
// match and must not generate questions.
func FromRows(rows []*bank.ConditionCatalog) Catalog {
	out := make(Catalog, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		var raw []string
		if err := json.Unmarshal([]byte(row.PatternsJson), &raw); err != nil {
			continue
		}
		patterns := make([]string, 0, len(raw))
		for _, p := range raw {
			if strings.TrimSpace(p) != "" {
				patterns = append(patterns, p)
			}
		}
		if len(patterns) == 0 {
			continue
		}
		out = append(out, Entry{
			Key:      row.Key,
			Patterns: patterns,
			Question: row.Question,
			Explain:  row.Explain.String,
		})
	}
	return out
}
