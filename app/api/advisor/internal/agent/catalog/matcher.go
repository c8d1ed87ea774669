package catalog

import (
	"strings"
	"unicode/utf8"
)

const summaryRuneBudget = 80

// FindKeys returns the catalog keys whose patterns occur literally in text,
// in catalog order, each at most once. Within an entry the first matching
// pattern wins; pattern order is a priority hint, not exclusivity.
func FindKeys(text string, c Catalog) []string {
	if text == "" || len(c) == 0 {
		return nil
	}
	found := make([]string, 0, 4)
	for _, e := range c {
		for _, p := range e.Patterns {
			if p != "" && strings.Contains(text, p) {
				found = append(found, e.Key)
				break
			}
		}
	}
	return found
}

// Summarize turns one candidate's raw condition text into a short label: the
// first two matched catalog keys (with an "외" marker when more matched), or
// the first sentence/clause of the raw text truncated to a fixed budget.
func Summarize(raw string, c Catalog) string {
	r := strings.TrimSpace(raw)
	if r == "" {
		return "우대조건 정보 없음"
	}

	picks := FindKeys(r, c)
	if len(picks) > 0 {
		short := strings.Join(picks[:min(2, len(picks))], ", ")
		if len(picks) > 2 {
			short += " 외"
		}
		return "주요 우대조건 키워드: " + short
	}

	first := strings.TrimSpace(firstClause(r))
	if first != "" {
		return truncateRunes(first, summaryRuneBudget)
	}
	return "우대조건 정보 있음"
}

func firstClause(s string) string {
	if idx := strings.IndexAny(s, "\n."); idx >= 0 {
		return s[:idx]
	}
	return s
}

func truncateRunes(s string, budget int) string {
	if utf8.RuneCountInString(s) <= budget {
		return s
	}
	runes := []rune(s)
	return string(runes[:budget]) + "…"
}
