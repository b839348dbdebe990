package analyzer

import (
	"regexp"

	"forceskill/internal/domain"
)

const (
	vocabularyMinLen = 4
	vocabularyMaxLen = 29
)

var (
	// "Machine Learning (a field of AI)" -> term before the parenthetical.
	parentheticalTermRe = regexp.MustCompile(`(` + capitalizedPhrase + `)\s*\([^)]{2,}\)`)

	// Abstract-noun suffixes typical of course vocabulary.
	abstractNounRe = regexp.MustCompile(`\b[A-Za-z]+(?:tion|sion|ment|ness|ity|ism)\b`)
)

// ExtractVocabulary collects terms explained in parentheses plus words with
// abstract-noun suffixes, keeping lengths of 4-29 chars, capped at 15.
func ExtractVocabulary(text string) []string {
	vocab := make([]string, 0, domain.MaxVocabulary)
	seen := make(map[string]bool)

	for _, m := range parentheticalTermRe.FindAllStringSubmatch(text, -1) {
		if !vocabularyLength(m[1]) {
			continue
		}
		vocab, _ = appendUnique(vocab, seen, m[1], domain.MaxVocabulary)
	}

	for _, m := range abstractNounRe.FindAllString(text, -1) {
		if len(vocab) >= domain.MaxVocabulary {
			break
		}
		if !vocabularyLength(m) {
			continue
		}
		vocab, _ = appendUnique(vocab, seen, m, domain.MaxVocabulary)
	}

	return vocab
}

func vocabularyLength(s string) bool {
	n := len([]rune(s))
	return n >= vocabularyMinLen && n <= vocabularyMaxLen
}
