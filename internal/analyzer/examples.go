package analyzer

import (
	"regexp"

	"forceskill/internal/domain"
)

const (
	exampleMinLen = 15
	exampleMaxLen = 250
)

// exampleRe captures a clause from an example introducer up to the next
// sentence terminator, introducer included.
var exampleRe = regexp.MustCompile(`(?i)(?:\bfor example\b|\bfor instance\b|\bsuch as\b|\bincluding\b|\blike\b|e\.g\.|\bconsider\b|\bimagine\b)[,:]?\s+[^.!?\n]+`)

// ExtractExamples collects example clauses of 15-250 chars, deduped and
// capped at 6.
func ExtractExamples(text string) []string {
	examples := make([]string, 0, domain.MaxExamples)
	seen := make(map[string]bool)

	for _, m := range exampleRe.FindAllString(text, -1) {
		if n := len([]rune(m)); n < exampleMinLen || n > exampleMaxLen {
			continue
		}
		examples, _ = appendUnique(examples, seen, m, domain.MaxExamples)
		if len(examples) == domain.MaxExamples {
			break
		}
	}
	return examples
}
