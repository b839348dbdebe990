package quizgen

import (
	"strings"
	"unicode/utf8"

	"forceskill/internal/domain"
)

const (
	// maxPromptLength bounds the assembled prompt; truncation is a hard cut
	// with an ellipsis marker, not a sentence-boundary search.
	maxPromptLength = 8000
	ellipsisMarker  = "..."
)

// BuildQuizPrompt deterministically serializes parsed content into one
// bounded prompt string: title, then headings, then key points, then the
// full raw text.
func BuildQuizPrompt(content *domain.ParsedContent) string {
	var b strings.Builder

	if content.Title != "" {
		b.WriteString("Title: ")
		b.WriteString(content.Title)
		b.WriteString("\n\n")
	}
	if len(content.Headings) > 0 {
		b.WriteString("Main Topics:\n")
		b.WriteString(strings.Join(content.Headings, "\n"))
		b.WriteString("\n\n")
	}
	if len(content.KeyPoints) > 0 {
		b.WriteString("Key Points:\n")
		b.WriteString(strings.Join(content.KeyPoints, "\n"))
		b.WriteString("\n\n")
	}
	b.WriteString("Content:\n")
	b.WriteString(content.RawText)

	prompt := b.String()
	if len(prompt) > maxPromptLength {
		cut := maxPromptLength
		for cut > 0 && !utf8.RuneStart(prompt[cut]) {
			cut--
		}
		prompt = prompt[:cut] + ellipsisMarker
	}
	return prompt
}
