// Package orchestrator fetches pages and asks a Generator to summarize them
// or answer questions about them.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/a-h/interectors/content"
	"github.com/a-h/interectors/features"
	"github.com/a-h/interectors/generator"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrGeneration   = errors.New("generation failed")
)

func New(log *slog.Logger, source content.Source, gen generator.Generator, prompts Prompts, extractor features.Extractor) *Orchestrator {
	return &Orchestrator{
		log:       log,
		source:    source,
		generator: gen,
		prompts:   prompts,
		extractor: extractor,
	}
}

type Orchestrator struct {
	log       *slog.Logger
	source    content.Source
	generator generator.Generator
	prompts   Prompts
	extractor features.Extractor
}

// Summarize returns a summary of the page at url.
func (o *Orchestrator) Summarize(ctx context.Context, url string) (summary string, err error) {
	if strings.TrimSpace(url) == "" {
		return "", fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	text, err := o.getContent(ctx, url)
	if err != nil {
		return "", err
	}
	prompt, err := o.prompts.SummaryPrompt(text)
	if err != nil {
		return "", fmt.Errorf("failed to create prompt: %w", err)
	}
	return o.generate(ctx, prompt)
}

// Answer is the response to a question about a page.
type Answer struct {
	Text     string
	Features features.Bundle
	// Probability is the question and answer similarity.
	Probability float64
}

// Answer answers question using the page at url, and computes the lexical
// features of the page, question and answer.
func (o *Orchestrator) Answer(ctx context.Context, url, question string) (a Answer, err error) {
	if strings.TrimSpace(url) == "" || strings.TrimSpace(question) == "" {
		return a, fmt.Errorf("%w: url and question are required", ErrInvalidInput)
	}
	text, err := o.getContent(ctx, url)
	if err != nil {
		return a, err
	}
	prompt, err := o.prompts.AnswerPrompt(text, question)
	if err != nil {
		return a, fmt.Errorf("failed to create prompt: %w", err)
	}
	a.Text, err = o.generate(ctx, prompt)
	if err != nil {
		return a, err
	}
	a.Features = o.extractor.Build(text, question, a.Text)
	a.Probability = a.Features.QuestionAnswerSimilarity
	return a, nil
}

func (o *Orchestrator) getContent(ctx context.Context, url string) (text string, err error) {
	text, err = o.source.Get(ctx, url)
	if err != nil {
		if errors.Is(err, content.ErrUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", content.ErrUnavailable, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: failed to load page content from %s", content.ErrUnavailable, url)
	}
	return text, nil
}

func (o *Orchestrator) generate(ctx context.Context, prompt string) (string, error) {
	o.log.Debug("generating content", slog.Int("promptLength", len(prompt)))
	resp, err := o.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	return resp, nil
}
