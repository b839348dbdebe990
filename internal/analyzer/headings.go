package analyzer

import (
	"regexp"
	"strings"
	"unicode"

	"forceskill/internal/domain"
)

const (
	headingMinLen = 3
	headingMaxLen = 100
)

var (
	numberedPrefixRe   = regexp.MustCompile(`^(?:\d+|[IVXLCDM]+)[.)]\s+`)
	structuralPrefixRe = regexp.MustCompile(`(?i)^(?:chapter|section|part|unit|lesson|module|introduction|conclusion|summary|abstract|overview|appendix|references|glossary)\b`)
)

// IsHeading reports whether a candidate line looks like a document heading.
// A 3-100 char line qualifies if it starts with an uppercase letter, carries
// a numbered or roman-numeral prefix, contains a colon, starts with a
// structural keyword, is entirely uppercase, or is strict Title Case.
func IsHeading(line string) bool {
	line = strings.TrimSpace(line)
	n := len([]rune(line))
	if n < headingMinLen || n > headingMaxLen {
		return false
	}

	first := []rune(line)[0]
	if unicode.IsUpper(first) {
		return true
	}
	if numberedPrefixRe.MatchString(line) {
		return true
	}
	if strings.Contains(line, ":") {
		return true
	}
	if structuralPrefixRe.MatchString(line) {
		return true
	}
	if isAllUppercase(line) {
		return true
	}
	return isTitleCase(line)
}

// ExtractHeadings scans text line by line and collects heading candidates.
func ExtractHeadings(text string) []string {
	headings := make([]string, 0, domain.MaxHeadings)
	seen := make(map[string]bool)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !IsHeading(line) {
			continue
		}
		headings, _ = appendUnique(headings, seen, line, domain.MaxHeadings)
		if len(headings) == domain.MaxHeadings {
			break
		}
	}
	return headings
}

func isAllUppercase(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isTitleCase requires every word to begin with an uppercase letter.
func isTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
