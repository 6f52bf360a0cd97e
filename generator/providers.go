package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"google.golang.org/genai"
)

const (
	ProviderGoogle = "google"
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderTest   = "test"
)

var ErrUnknownProvider = errors.New("unknown provider")

// LangChain adapts a langchaingo model.
type LangChain struct {
	Model llms.Model
}

func (g LangChain) Generate(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.Model, prompt)
}

// NewGemini creates a Generator that uses the Gemini API.
func NewGemini(ctx context.Context, httpClient *http.Client, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("a Google API key is required for model %q", model)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

type Gemini struct {
	client *genai.Client
	model  string
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %q", g.model)
	}
	return text, nil
}

// ProviderConfig holds the settings needed to create each provider's clients.
type ProviderConfig struct {
	HTTPClient    *http.Client
	GoogleAPIKey  string
	OllamaURL     string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	// TestResponse is returned by every "test" model.
	TestResponse string
}

// Factory creates the Generator for a Candidate.
type Factory func(ctx context.Context, c Candidate) (Generator, error)

func NewFactory(cfg ProviderConfig) Factory {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return func(ctx context.Context, c Candidate) (Generator, error) {
		switch c.Provider {
		case ProviderGoogle:
			return NewGemini(ctx, httpClient, cfg.GoogleAPIKey, c.Model)
		case ProviderOllama:
			opts := []ollama.Option{
				ollama.WithModel(c.Model),
				ollama.WithHTTPClient(httpClient),
			}
			if cfg.OllamaURL != "" {
				opts = append(opts, ollama.WithServerURL(cfg.OllamaURL))
			}
			llm, err := ollama.New(opts...)
			if err != nil {
				return nil, err
			}
			return LangChain{Model: llm}, nil
		case ProviderOpenAI:
			opts := []openai.Option{
				openai.WithModel(c.Model),
				openai.WithHTTPClient(httpClient),
			}
			if cfg.OpenAIAPIKey != "" {
				opts = append(opts, openai.WithToken(cfg.OpenAIAPIKey))
			}
			if cfg.OpenAIBaseURL != "" {
				opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
			}
			llm, err := openai.New(opts...)
			if err != nil {
				return nil, err
			}
			return LangChain{Model: llm}, nil
		case ProviderTest:
			return Static(cfg.TestResponse), nil
		}
		return nil, fmt.Errorf("%w %q", ErrUnknownProvider, c.Provider)
	}
}
