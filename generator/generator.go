// Package generator turns prompts into text using a language model.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Generator returns a model's response to a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Func adapts a function to the Generator interface.
type Func func(ctx context.Context, prompt string) (string, error)

func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Static always responds with the same text.
type Static string

func (s Static) Generate(ctx context.Context, prompt string) (string, error) {
	return string(s), ctx.Err()
}

// Candidate identifies a model, e.g. "google:gemini-2.5-flash" or "ollama:llama3:8b".
type Candidate struct {
	Provider string
	Model    string
}

func (c Candidate) String() string {
	return c.Provider + ":" + c.Model
}

var ErrInvalidCandidate = errors.New("invalid model candidate")

// ParseCandidate parses "provider:model". Everything after the first colon is the model name.
func ParseCandidate(s string) (c Candidate, err error) {
	provider, model, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || provider == "" || model == "" {
		return c, fmt.Errorf("%w: %q, expected provider:model", ErrInvalidCandidate, s)
	}
	return Candidate{
		Provider: strings.ToLower(provider),
		Model:    model,
	}, nil
}

// ParseCandidates parses each of values, ignoring empty entries.
func ParseCandidates(values []string) (candidates []Candidate, err error) {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		c, err := ParseCandidate(v)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
