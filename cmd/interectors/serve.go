package main

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/a-h/interectors/auth"
	"github.com/a-h/interectors/content"
	"github.com/a-h/interectors/db"
	"github.com/a-h/interectors/features"
	"github.com/a-h/interectors/generator"
	featurespost "github.com/a-h/interectors/handlers/features/post"
	healthget "github.com/a-h/interectors/handlers/health/get"
	historyget "github.com/a-h/interectors/handlers/history/get"
	qapost "github.com/a-h/interectors/handlers/qa/post"
	summarizepost "github.com/a-h/interectors/handlers/summarize/post"
	"github.com/a-h/interectors/orchestrator"
	"github.com/rs/cors"
)

type ServeCommand struct {
	ListenAddr    string        `help:"The address to listen on." env:"LISTEN_ADDR" default:"localhost:8000"`
	TLSCertFile   string        `help:"The TLS certificate file." env:"TLS_CERT_FILE" default:""`
	TLSKeyFile    string        `help:"The TLS key file." env:"TLS_KEY_FILE" default:""`
	APIKeysFile   string        `help:"The file containing a JSON map of API keys to usernames. If empty, requests are not authenticated." env:"API_KEYS_FILE" default:""`
	CORSOrigins   []string      `help:"The origins allowed to call the API, e.g. chrome-extension://*." env:"CORS_ORIGINS" default:"*"`
	Models        []string      `help:"Model candidates in order of preference, as provider:model." env:"MODELS" default:"google:gemini-2.5-flash,google:gemini-2.0-flash,ollama:mistral-nemo"`
	ProbeModels   bool          `help:"Send a short prompt to each candidate model before selecting it." env:"PROBE_MODELS" default:"false"`
	GoogleAPIKey  string        `help:"The Google API key used for Gemini models." env:"GOOGLE_API_KEY" default:""`
	OllamaURL     string        `help:"The URL of the Ollama server." env:"OLLAMA_URL" default:"http://127.0.0.1:11434/"`
	OpenAIAPIKey  string        `help:"The OpenAI API key." env:"OPENAI_API_KEY" default:""`
	OpenAIBaseURL string        `help:"The base URL of an OpenAI compatible API." env:"OPENAI_BASE_URL" default:""`
	TestResponse  string        `help:"The response returned by test:* models." env:"TEST_RESPONSE" default:"This is a test response."`
	SummaryPrompt string        `help:"A file containing the summary prompt template." env:"SUMMARY_PROMPT" default:""`
	AnswerPrompt  string        `help:"A file containing the question answering prompt template." env:"ANSWER_PROMPT" default:""`
	FetchTimeout  time.Duration `help:"The timeout for fetching a page." env:"FETCH_TIMEOUT" default:"10s"`
	FetchMaxBytes int64         `help:"The maximum number of bytes read from a page." env:"FETCH_MAX_BYTES" default:"5242880"`
	MaxChars      int           `help:"The maximum number of characters of page text sent to the model." env:"MAX_CHARS" default:"10000"`
	UserAgent     string        `help:"The User-Agent sent when fetching pages." env:"USER_AGENT" default:""`
	StopWordsFile string        `help:"A file containing one stop word per line." env:"STOP_WORDS_FILE" default:""`
	MinKeywordLen int           `help:"The minimum number of characters in a keyword." env:"MIN_KEYWORD_LENGTH" default:"4"`
	RqliteURL     string        `help:"The URL of the rqlite server used to record interactions. If empty, interactions are not recorded." env:"RQLITE_URL" default:""`
	LogLevel      string        `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
	LogFormat     string        `help:"The log format to use." env:"LOG_FORMAT" default:"json" enum:"json,text"`
}

func readFileOrDefault(filename, defaultContent string) (string, error) {
	if filename == "" {
		return defaultContent, nil
	}
	contents, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return string(contents), nil
}

// readStopWords reads one word per line. Blank lines and lines starting with # are ignored.
func readStopWords(filename string) (words []string, err error) {
	if filename == "" {
		return nil, nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open stop words file: %w", err)
	}
	defer f.Close()
	words = []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stop words file: %w", err)
	}
	return words, nil
}

func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 || slices.Contains(origins, "*") {
		return cors.AllowAll()
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
}

func (c ServeCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel, c.LogFormat)

	summaryTemplate, err := readFileOrDefault(c.SummaryPrompt, orchestrator.DefaultSummaryTemplate)
	if err != nil {
		return fmt.Errorf("failed to read summary prompt: %w", err)
	}
	answerTemplate, err := readFileOrDefault(c.AnswerPrompt, orchestrator.DefaultAnswerTemplate)
	if err != nil {
		return fmt.Errorf("failed to read answer prompt: %w", err)
	}
	prompts, err := orchestrator.NewPrompts(summaryTemplate, answerTemplate)
	if err != nil {
		return fmt.Errorf("invalid prompt template: %w", err)
	}

	stopWords, err := readStopWords(c.StopWordsFile)
	if err != nil {
		return err
	}
	extractor := features.NewExtractor(features.Options{
		MinLength: c.MinKeywordLen,
		StopWords: stopWords,
	})

	httpClient := &http.Client{}
	source := content.NewHTTPSource(log, httpClient, content.HTTPSourceOptions{
		UserAgent: c.UserAgent,
		Timeout:   c.FetchTimeout,
		MaxBytes:  c.FetchMaxBytes,
		MaxChars:  c.MaxChars,
	})

	log.Info("creating LLM client")
	candidates, err := generator.ParseCandidates(c.Models)
	if err != nil {
		return fmt.Errorf("failed to parse models: %w", err)
	}
	factory := generator.NewFactory(generator.ProviderConfig{
		HTTPClient:    httpClient,
		GoogleAPIKey:  c.GoogleAPIKey,
		OllamaURL:     c.OllamaURL,
		OpenAIAPIKey:  c.OpenAIAPIKey,
		OpenAIBaseURL: c.OpenAIBaseURL,
		TestResponse:  c.TestResponse,
	})
	gen, err := generator.Select(ctx, log, candidates, factory, c.ProbeModels)
	if err != nil {
		return fmt.Errorf("failed to create LLM: %w", err)
	}

	orch := orchestrator.New(log, source, gen, prompts, extractor)

	api := http.NewServeMux()

	var recorder summarizepost.Recorder = db.Discard{}
	if c.RqliteURL != "" {
		log.Info("connecting to database", slog.String("url", c.RqliteURL))
		conn, err := db.Open(c.RqliteURL)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer conn.Close()
		queries := db.New(conn)
		recorder = queries
		api.Handle("GET /history", historyget.New(log, queries))
	}

	api.Handle("POST /summarize", summarizepost.New(log, orch, recorder))
	api.Handle("POST /qa", qapost.New(log, orch, recorder))
	api.Handle("POST /features", featurespost.New(log, extractor))

	var apiHandler http.Handler = api
	if c.APIKeysFile != "" {
		apiKeyToUserName, err := auth.LoadFromFile(c.APIKeysFile)
		if err != nil {
			return fmt.Errorf("failed to load API keys: %w", err)
		}
		apiHandler = auth.New(apiKeyToUserName, api)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthget.Health)
	mux.HandleFunc("GET /{$}", healthget.Root)
	mux.Handle("/", apiHandler)

	log.Info("Listening", slog.String("addr", c.ListenAddr), slog.String("model", gen.Candidate.String()))
	s := &http.Server{
		Addr:    c.ListenAddr,
		Handler: newCORS(c.CORSOrigins).Handler(mux),
	}
	if c.TLSCertFile != "" && c.TLSKeyFile != "" {
		log.Info("Enabling TLS mode")
		var cert tls.Certificate
		cert, err = tls.LoadX509KeyPair(c.TLSCertFile, c.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("failed to load cert: %w", err)
		}
		s.TLSConfig = &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{cert},
		}
		return s.ListenAndServeTLS(c.TLSCertFile, c.TLSKeyFile)
	}
	return s.ListenAndServe()
}
