// Package analyzer derives categorized excerpts from plain document text.
// Each extraction pass is a pure function over the text; none depends on
// another's output, so every pass is independently testable. All list caps
// and length bounds are exact contracts, and truncation keeps the first N
// items found in a single left-to-right scan.
package analyzer

import (
	"strings"

	"forceskill/internal/domain"
)

// Analyze runs the full battery of extraction passes over text. Headings and
// sections already detected by the extractor are reused when present;
// otherwise headings are re-derived from the text line by line.
func Analyze(text string, headings, sections []string) *domain.ParsedContent {
	if len(headings) == 0 {
		headings = ExtractHeadings(text)
	} else {
		headings = dedupeCapped(headings, domain.MaxHeadings)
	}
	sections = dedupeCapped(sections, domain.MaxSections)

	return &domain.ParsedContent{
		RawText:     text,
		Title:       ExtractTitle(text, headings),
		Headings:    headings,
		KeyPoints:   ExtractKeyPoints(text),
		Concepts:    ExtractConcepts(text),
		Definitions: ExtractDefinitions(text),
		Facts:       ExtractFacts(text),
		Examples:    ExtractExamples(text),
		Sections:    sections,
		Vocabulary:  ExtractVocabulary(text),
		Processes:   ExtractProcesses(text),
		Statistics:  ExtractStatistics(text),
	}
}

// ExtractTitle prefers the first detected heading, then the first short
// (5-100 chars) non-empty line, then the literal default.
func ExtractTitle(text string, headings []string) string {
	if len(headings) > 0 {
		return headings[0]
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if n := len([]rune(line)); n >= 5 && n <= 100 {
			return line
		}
	}
	return domain.DefaultTitle
}

// dedupeCapped removes duplicates preserving first occurrence and truncates
// to max entries.
func dedupeCapped(items []string, max int) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) == max {
			break
		}
	}
	return out
}

// appendUnique adds item to list unless it is already present or the cap is
// reached. Returns the list and whether the item was added.
func appendUnique(list []string, seen map[string]bool, item string, max int) ([]string, bool) {
	item = strings.TrimSpace(item)
	if item == "" || seen[item] || len(list) >= max {
		return list, false
	}
	seen[item] = true
	return append(list, item), true
}
