package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"forceskill/internal/domain"
)

const (
	conceptMinLen = 3
	conceptMaxLen = 50

	// Frequency-mined capitalized tokens must occur at least twice; top 8
	// by descending frequency are kept.
	conceptMinFrequency = 2
	conceptFreqTop      = 8
)

// capitalizedPhrase matches one or more consecutive Capitalized words.
const capitalizedPhrase = `[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*`

var conceptPatterns = []*regexp.Regexp{
	// "Machine Learning is/are/refers to/means/involves ..."
	regexp.MustCompile(`(` + capitalizedPhrase + `)\s+(?:is|are|refers to|means|involves)\b`),
	// "concept of Natural Selection", "theory of Relativity"
	regexp.MustCompile(`(?:concept|theory|principle|process|method|approach|law)\s+of\s+(` + capitalizedPhrase + `)`),
	// "Darwinian theory", "Monte Carlo method"
	regexp.MustCompile(`(` + capitalizedPhrase + `)\s+(?:theory|principle|concept|method|model|framework|approach|technique)\b`),
}

var conceptStopwords = map[string]bool{
	"The": true, "This": true, "That": true, "These": true, "Those": true,
	"When": true, "Where": true, "What": true, "Which": true, "Who": true,
	"How": true, "Why": true, "It": true, "If": true, "In": true, "On": true,
	"At": true, "For": true, "With": true, "From": true, "There": true,
	"They": true, "You": true, "We": true, "He": true, "She": true,
}

var capitalizedTokenRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)

// ExtractConcepts mines conceptual terms via explicit patterns plus a
// frequency count of repeated capitalized tokens; both sources are merged,
// deduped, and capped at 12.
func ExtractConcepts(text string) []string {
	concepts := make([]string, 0, domain.MaxConcepts)
	seen := make(map[string]bool)

	for _, re := range conceptPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(m[1])
			if !validConcept(candidate) {
				continue
			}
			concepts, _ = appendUnique(concepts, seen, candidate, domain.MaxConcepts)
		}
	}

	for _, candidate := range frequentCapitalizedTokens(text) {
		if len(concepts) >= domain.MaxConcepts {
			break
		}
		concepts, _ = appendUnique(concepts, seen, candidate, domain.MaxConcepts)
	}

	return concepts
}

func validConcept(candidate string) bool {
	n := len([]rune(candidate))
	if n < conceptMinLen || n > conceptMaxLen {
		return false
	}
	firstWord := strings.Fields(candidate)[0]
	return !conceptStopwords[firstWord]
}

// frequentCapitalizedTokens returns tokens occurring at least twice, ordered
// by descending frequency with ties broken by first appearance, top 8.
func frequentCapitalizedTokens(text string) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, tok := range capitalizedTokenRe.FindAllString(text, -1) {
		if !validConcept(tok) {
			continue
		}
		counts[tok]++
		if _, ok := firstSeen[tok]; !ok {
			firstSeen[tok] = i
		}
	}

	frequent := make([]string, 0, len(counts))
	for tok, c := range counts {
		if c >= conceptMinFrequency {
			frequent = append(frequent, tok)
		}
	}
	sort.Slice(frequent, func(i, j int) bool {
		if counts[frequent[i]] != counts[frequent[j]] {
			return counts[frequent[i]] > counts[frequent[j]]
		}
		return firstSeen[frequent[i]] < firstSeen[frequent[j]]
	})

	if len(frequent) > conceptFreqTop {
		frequent = frequent[:conceptFreqTop]
	}
	return frequent
}
