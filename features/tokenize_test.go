package features

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input yields no tokens",
			input:    "",
			expected: []string{},
		},
		{
			name:     "whitespace only yields no tokens",
			input:    " \t\n ",
			expected: []string{},
		},
		{
			name:     "text is lowercased",
			input:    "Hello WORLD",
			expected: []string{"hello", "world"},
		},
		{
			name:     "punctuation separates tokens",
			input:    "Hello, World! it's snake_case 42",
			expected: []string{"hello", "world", "it", "s", "snake_case", "42"},
		},
		{
			name:     "punctuation without surrounding space still separates",
			input:    "cats/dogs...birds",
			expected: []string{"cats", "dogs", "birds"},
		},
		{
			name:     "non-ASCII letters are kept",
			input:    "Crème brûlée",
			expected: []string{"crème", "brûlée"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := Normalize(tt.input)
			if diff := cmp.Diff(tt.expected, actual, cmpopts.EquateEmpty()); diff != "" {
				t.Error(diff)
			}
		})
	}
}
