package analyzer

import (
	"regexp"
	"strings"

	"forceskill/internal/domain"
)

const (
	processMinLen = 20
	processMaxLen = 200
)

// "Step 3: ..." style clauses.
var numberedStepRe = regexp.MustCompile(`(?i)\b(?:step|stage|phase|procedure|method)\s+\d+[:.)]?\s*[^.!?\n]*`)

// Sentence-initial sequence words.
var sequenceWords = []string{"first", "second", "third", "next", "then", "finally", "lastly"}

// ExtractProcesses collects procedural clauses, either numbered steps or
// sentences opened by a sequence word, 20-200 chars, capped at 8.
func ExtractProcesses(text string) []string {
	processes := make([]string, 0, domain.MaxProcesses)
	seen := make(map[string]bool)

	for _, m := range numberedStepRe.FindAllString(text, -1) {
		if !processLength(m) {
			continue
		}
		processes, _ = appendUnique(processes, seen, m, domain.MaxProcesses)
	}

	for _, s := range SplitSentences(text) {
		if len(processes) >= domain.MaxProcesses {
			break
		}
		if !processLength(s) || !startsWithSequenceWord(s) {
			continue
		}
		processes, _ = appendUnique(processes, seen, s, domain.MaxProcesses)
	}

	return processes
}

func processLength(s string) bool {
	n := len([]rune(s))
	return n >= processMinLen && n <= processMaxLen
}

func startsWithSequenceWord(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, w := range sequenceWords {
		if strings.HasPrefix(lower, w+",") || strings.HasPrefix(lower, w+" ") || strings.HasPrefix(lower, w+":") {
			return true
		}
	}
	return false
}
