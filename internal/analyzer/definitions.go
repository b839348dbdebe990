package analyzer

import (
	"regexp"
	"strings"

	"forceskill/internal/domain"
)

const (
	definitionTermMinLen = 3
	definitionBodyMinLen = 10
	definitionBodyMaxLen = 200
)

// Six distinct linking constructions "Term <link> body".
var definitionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(` + capitalizedPhrase + `)\s+is\s+([^.!?\n]+)`),
	regexp.MustCompile(`(` + capitalizedPhrase + `)\s+refers to\s+([^.!?\n]+)`),
	regexp.MustCompile(`(` + capitalizedPhrase + `)\s+means\s+([^.!?\n]+)`),
	regexp.MustCompile(`(` + capitalizedPhrase + `)\s+can be defined as\s+([^.!?\n]+)`),
	regexp.MustCompile(`(` + capitalizedPhrase + `)\s+involves\s+([^.!?\n]+)`),
	regexp.MustCompile(`(` + capitalizedPhrase + `)\s+consists of\s+([^.!?\n]+)`),
}

// ExtractDefinitions collects "Term: definition" entries where the term is a
// capitalized phrase longer than 2 chars and the definition body is 10-200
// chars, capped at 10.
func ExtractDefinitions(text string) []string {
	definitions := make([]string, 0, domain.MaxDefinitions)
	seen := make(map[string]bool)

	for _, re := range definitionPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			term := strings.TrimSpace(m[1])
			body := strings.TrimSpace(m[2])
			if len([]rune(term)) <= definitionTermMinLen-1 {
				continue
			}
			if n := len([]rune(body)); n < definitionBodyMinLen || n > definitionBodyMaxLen {
				continue
			}
			entry := term + ": " + body
			definitions, _ = appendUnique(definitions, seen, entry, domain.MaxDefinitions)
		}
	}

	return definitions
}
