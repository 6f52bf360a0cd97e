package features

import (
	"slices"
	"unicode/utf8"
)

// DefaultMinLength is the shortest token, in characters, kept as a keyword.
const DefaultMinLength = 4

// DefaultStopWords are common English function words that are never keywords.
var DefaultStopWords = []string{
	"the", "and", "for", "are", "but", "not", "was", "has", "had", "can",
	"this", "that", "these", "those", "with", "from", "into", "about", "than", "then",
	"what", "when", "where", "which", "while", "will", "would", "could", "should", "have",
	"been", "being", "were", "does", "they", "there", "their",
}

// Options configure keyword extraction.
type Options struct {
	// MinLength is the minimum number of characters in a keyword. Zero uses DefaultMinLength.
	MinLength int
	// StopWords replaces DefaultStopWords when non-nil.
	StopWords []string
}

// NewExtractor creates an Extractor. The stop-word set is copied, so the
// Extractor is safe for concurrent use.
func NewExtractor(opts Options) Extractor {
	minLength := opts.MinLength
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	stopWords := opts.StopWords
	if stopWords == nil {
		stopWords = DefaultStopWords
	}
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		for _, t := range Normalize(w) {
			set[t] = struct{}{}
		}
	}
	return Extractor{
		minLength: minLength,
		stopWords: set,
	}
}

// Extractor filters normalized tokens down to keywords.
type Extractor struct {
	minLength int
	stopWords map[string]struct{}
}

// Default uses DefaultMinLength and DefaultStopWords.
var Default = NewExtractor(Options{})

// ExtractKeywords returns the keywords of text using the Default extractor.
func ExtractKeywords(text string) []string {
	return Default.Keywords(text)
}

// Keywords returns the keywords of text in the order they appear, including duplicates.
func (e Extractor) Keywords(text string) []string {
	tokens := Normalize(text)
	keywords := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if utf8.RuneCountInString(t) < e.minLength {
			continue
		}
		if _, isStopWord := e.stopWords[t]; isStopWord {
			continue
		}
		keywords = append(keywords, t)
	}
	return keywords
}

// KeywordCount is a keyword and the number of times it occurred.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Rank counts keywords and orders them by count, most frequent first.
// Keywords with equal counts keep the order in which they first appeared.
func Rank(keywords []string) []KeywordCount {
	indexOf := make(map[string]int, len(keywords))
	ranked := make([]KeywordCount, 0, len(keywords))
	for _, k := range keywords {
		if i, ok := indexOf[k]; ok {
			ranked[i].Count++
			continue
		}
		indexOf[k] = len(ranked)
		ranked = append(ranked, KeywordCount{Keyword: k, Count: 1})
	}
	slices.SortStableFunc(ranked, func(a, b KeywordCount) int {
		return b.Count - a.Count
	})
	return ranked
}

// Top returns the n most frequent keywords. The result is never nil.
func Top(keywords []string, n int) []string {
	ranked := Rank(keywords)
	if n < len(ranked) {
		ranked = ranked[:max(n, 0)]
	}
	top := make([]string, len(ranked))
	for i, kc := range ranked {
		top[i] = kc.Keyword
	}
	return top
}
