package orchestrator

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/prompts"
)

// Templates use Go template syntax. The page text is {{.text}} and the question is {{.question}}.
const (
	DefaultSummaryTemplate = "Summarize the following web page content in under 200 words:\n\n{{.text}}"
	DefaultAnswerTemplate  = "Use the following content to answer the question.\n\nContent:\n{{.text}}\n\nQuestion: {{.question}}\n\nAnswer:"
)

type Prompts struct {
	Summary prompts.PromptTemplate
	Answer  prompts.PromptTemplate
}

// NewPrompts creates Prompts from templates, using the defaults for empty
// templates. Each template must include the values it is given.
func NewPrompts(summaryTemplate, answerTemplate string) (p Prompts, err error) {
	if summaryTemplate == "" {
		summaryTemplate = DefaultSummaryTemplate
	}
	if answerTemplate == "" {
		answerTemplate = DefaultAnswerTemplate
	}
	p.Summary = prompts.NewPromptTemplate(summaryTemplate, []string{"text"})
	p.Answer = prompts.NewPromptTemplate(answerTemplate, []string{"text", "question"})

	const text, question = "__text__", "__question__"
	summary, err := p.SummaryPrompt(text)
	if err != nil {
		return p, fmt.Errorf("invalid summary template: %w", err)
	}
	if !strings.Contains(summary, text) {
		return p, fmt.Errorf("invalid summary template: {{.text}} is not used")
	}
	answer, err := p.AnswerPrompt(text, question)
	if err != nil {
		return p, fmt.Errorf("invalid answer template: %w", err)
	}
	if !strings.Contains(answer, text) || !strings.Contains(answer, question) {
		return p, fmt.Errorf("invalid answer template: {{.text}} and {{.question}} must be used")
	}
	return p, nil
}

func (p Prompts) SummaryPrompt(text string) (string, error) {
	return p.Summary.Format(map[string]any{
		"text": text,
	})
}

func (p Prompts) AnswerPrompt(text, question string) (string, error) {
	return p.Answer.Format(map[string]any{
		"text":     text,
		"question": question,
	})
}
