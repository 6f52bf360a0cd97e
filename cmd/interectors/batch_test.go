package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadBatch(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      []BatchEntry
		expectedError bool
	}{
		{
			name: "questions and summaries can be mixed",
			input: `- url: https://example.com/a
  question: What is this page about?
- url: https://example.com/b
`,
			expected: []BatchEntry{
				{URL: "https://example.com/a", Question: "What is this page about?"},
				{URL: "https://example.com/b"},
			},
		},
		{
			name:     "empty files have no entries",
			input:    "",
			expected: nil,
		},
		{
			name: "entries must have a URL",
			input: `- question: Where is the URL?
`,
			expectedError: true,
		},
		{
			name:          "the file must contain a list",
			input:         `url: https://example.com`,
			expectedError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := readBatch(strings.NewReader(tt.input))
			if tt.expectedError {
				if err == nil {
					t.Fatalf("expected error, got %v", actual)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Error(diff)
			}
		})
	}
}
