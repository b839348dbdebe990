package analyzer

import (
	"regexp"
	"strings"

	"forceskill/internal/domain"
)

const (
	keyPointMinLen = 20
	keyPointMaxLen = 200

	// Bounds for padding sentences used when too few signal sentences exist.
	paddingMinLen = 40
	paddingMaxLen = 150

	// Minimum number of signal sentences before padding kicks in.
	keyPointTarget = 5
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// signalWordsRe covers importance, definitional-link, transition, and modal
// words; a sentence containing any of them is preferred as a key point.
var signalWordsRe = regexp.MustCompile(`(?i)\b(important|key|main|essential|critical|significant|fundamental|primary|crucial|vital|is|are|means|refers to|defined as|consists of|involves|therefore|however|moreover|furthermore|consequently|thus|additionally|finally|must|should|can|will|need to)\b`)

// SplitSentences splits text into trimmed, non-empty sentences delimited by
// '.', '!' or '?'.
func SplitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.ReplaceAll(p, "\n", " "))
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// ExtractKeyPoints selects up to 10 sentences of 20-200 chars that carry a
// signal word. If fewer than 5 are found, well-formed sentences of 40-150
// chars pad the list.
func ExtractKeyPoints(text string) []string {
	sentences := SplitSentences(text)

	points := make([]string, 0, domain.MaxKeyPoints)
	seen := make(map[string]bool)
	for _, s := range sentences {
		n := len([]rune(s))
		if n < keyPointMinLen || n > keyPointMaxLen {
			continue
		}
		if !signalWordsRe.MatchString(s) {
			continue
		}
		points, _ = appendUnique(points, seen, s, domain.MaxKeyPoints)
	}

	if len(points) < keyPointTarget {
		for _, s := range sentences {
			if len(points) >= keyPointTarget {
				break
			}
			n := len([]rune(s))
			if n < paddingMinLen || n > paddingMaxLen {
				continue
			}
			points, _ = appendUnique(points, seen, s, domain.MaxKeyPoints)
		}
	}

	return points
}
