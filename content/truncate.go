package content

import (
	"unicode/utf8"

	"github.com/tmc/langchaingo/textsplitter"
)

// Truncate shortens text to at most maxChars characters, preferring to cut at
// paragraph, line or word boundaries. A maxChars of zero or less disables truncation.
func Truncate(text string, maxChars int) (string, error) {
	if maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return text, nil
	}
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(maxChars),
		textsplitter.WithChunkOverlap(0),
	)
	chunks, err := splitter.SplitText(text)
	if err != nil {
		return "", err
	}
	if len(chunks) == 0 {
		return "", nil
	}
	first := chunks[0]
	if runes := []rune(first); len(runes) > maxChars {
		first = string(runes[:maxChars])
	}
	return first, nil
}
