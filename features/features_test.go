package features

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		extractor Extractor
		content   string
		question  string
		answer    string
		expected  Bundle
	}{
		{
			name:      "short words are not keywords by default",
			extractor: Default,
			content:   "The cat sat on the mat",
			question:  "What sat?",
			answer:    "The cat sat",
			expected: Bundle{
				TopContentKeywords:  []string{},
				TopQuestionKeywords: []string{},
				TopAnswerKeywords:   []string{},
				ContentLength:       22,
				AnswerLength:        11,
			},
		},
		{
			name:      "three letter keywords share sat between question and answer",
			extractor: NewExtractor(Options{MinLength: 3}),
			content:   "The cat sat on the mat",
			question:  "What sat?",
			answer:    "The cat sat",
			expected: Bundle{
				ContentQuestionSimilarity: 0.333,
				ContentAnswerSimilarity:   0.667,
				QuestionAnswerSimilarity:  0.5,
				TopContentKeywords:        []string{"cat", "sat", "mat"},
				TopQuestionKeywords:       []string{"sat"},
				TopAnswerKeywords:         []string{"cat", "sat"},
				ContentLength:             22,
				AnswerLength:              11,
			},
		},
		{
			name:      "empty content has no similarity",
			extractor: Default,
			content:   "",
			question:  "anything",
			answer:    "anything",
			expected: Bundle{
				QuestionAnswerSimilarity: 1,
				TopContentKeywords:       []string{},
				TopQuestionKeywords:      []string{"anything"},
				TopAnswerKeywords:        []string{"anything"},
				ContentLength:            0,
				AnswerLength:             8,
			},
		},
		{
			name:      "identical text is fully similar",
			extractor: Default,
			content:   "Gophers write concurrent programs",
			question:  "Gophers write concurrent programs",
			answer:    "Gophers write concurrent programs",
			expected: Bundle{
				ContentQuestionSimilarity: 1,
				ContentAnswerSimilarity:   1,
				QuestionAnswerSimilarity:  1,
				TopContentKeywords:        []string{"gophers", "write", "concurrent", "programs"},
				TopQuestionKeywords:       []string{"gophers", "write", "concurrent", "programs"},
				TopAnswerKeywords:         []string{"gophers", "write", "concurrent", "programs"},
				ContentLength:             33,
				AnswerLength:              33,
			},
		},
		{
			name:      "top keywords are limited to five",
			extractor: Default,
			content:   "alpha alpha alpha bravo bravo charlie delta delta delta delta echo foxtrot golf",
			question:  "",
			answer:    "",
			expected: Bundle{
				TopContentKeywords:  []string{"delta", "alpha", "bravo", "charlie", "echo"},
				TopQuestionKeywords: []string{},
				TopAnswerKeywords:   []string{},
				ContentLength:       79,
				AnswerLength:        0,
			},
		},
		{
			name:      "lengths count characters including whitespace",
			extractor: Default,
			content:   "  héllo wörld  ",
			question:  "",
			answer:    "naïve\tanswer",
			expected: Bundle{
				TopContentKeywords:  []string{"héllo", "wörld"},
				TopQuestionKeywords: []string{},
				TopAnswerKeywords:   []string{"naïve", "answer"},
				ContentLength:       15,
				AnswerLength:        12,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := tt.extractor.Build(tt.content, tt.question, tt.answer)
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestBuildIsSafeForConcurrentUse(t *testing.T) {
	content := "Concurrency in Go uses goroutines and channels. Goroutines are cheap."
	question := "How are goroutines scheduled?"
	answer := "Goroutines are scheduled by the runtime onto threads."
	expected := Build(content, question, answer)

	var wg sync.WaitGroup
	results := make([]Bundle, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Build(content, question, answer)
		}(i)
	}
	wg.Wait()
	for i, actual := range results {
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("result %d differs: %v", i, diff)
		}
	}
}
