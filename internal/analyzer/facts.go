package analyzer

import (
	"regexp"

	"forceskill/internal/domain"
)

const (
	factMinLen = 20
	factMaxLen = 200

	statisticMinLen = 15
	statisticMaxLen = 150
)

// A sentence is a fact when it carries a quantity, a year, an approximation
// qualifier, a unit, or a research attribution.
var factSignals = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?\s*%`),
	regexp.MustCompile(`\b(?:1[89]\d{2}|20\d{2})\b`),
	regexp.MustCompile(`(?i)\b(?:million|billion|trillion|thousand|hundred)\b`),
	regexp.MustCompile(`(?i)\b(?:approximately|about|around|over|under|nearly|roughly|more than|less than)\b`),
	regexp.MustCompile(`(?i)\b(?:percent|degrees|miles|kilometers|meters|kilograms|pounds|hours|minutes|seconds|years)\b`),
	regexp.MustCompile(`(?i)\b(?:research shows|research indicates|studies show|studies indicate|according to|evidence suggests|scientists found|researchers found)\b`),
}

// ExtractFacts keeps sentences of 20-200 chars matching any fact signal,
// deduped and capped at 8.
func ExtractFacts(text string) []string {
	facts := make([]string, 0, domain.MaxFacts)
	seen := make(map[string]bool)

	for _, s := range SplitSentences(text) {
		if n := len([]rune(s)); n < factMinLen || n > factMaxLen {
			continue
		}
		for _, re := range factSignals {
			if re.MatchString(s) {
				facts, _ = appendUnique(facts, seen, s, domain.MaxFacts)
				break
			}
		}
		if len(facts) == domain.MaxFacts {
			break
		}
	}
	return facts
}

var statisticPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?%\s+of\s+[^.!?\n]*`),
	regexp.MustCompile(`(?i)\b(?:average|mean|median|correlation)\b[^.!?\n]*`),
	regexp.MustCompile(`(?i)\b\d+\s+out\s+of\s+\d+[^.!?\n]*`),
}

// ExtractStatistics collects statistical clauses (percent-of, averages,
// n-out-of-m) of 15-150 chars, deduped and capped at 6.
func ExtractStatistics(text string) []string {
	stats := make([]string, 0, domain.MaxStatistics)
	seen := make(map[string]bool)

	for _, re := range statisticPatterns {
		for _, m := range re.FindAllString(text, -1) {
			if n := len([]rune(m)); n < statisticMinLen || n > statisticMaxLen {
				continue
			}
			stats, _ = appendUnique(stats, seen, m, domain.MaxStatistics)
		}
	}
	return stats
}
