package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/a-h/interectors/client"
	"github.com/a-h/interectors/features"
	"github.com/a-h/interectors/models"
	"gopkg.in/yaml.v3"
)

type BatchCommand struct {
	ServerURL       string `help:"The URL of the API server." env:"INTERECTORS_URL" default:"http://localhost:8000"`
	ServerAPIKey    string `help:"The API key for the API server." env:"INTERECTORS_API_KEY" default:""`
	File            string `help:"A YAML file containing a list of url and question entries. Entries without a question are summarized." required:""`
	ContinueOnError bool   `help:"Keep going when an entry fails, reporting the error in its output line." default:"true" negatable:""`
	LogLevel        string `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
	LogFormat       string `help:"The log format to use." env:"LOG_FORMAT" default:"text" enum:"json,text"`
}

// BatchEntry is a single item in a batch file.
type BatchEntry struct {
	URL      string `yaml:"url"`
	Question string `yaml:"question"`
}

// BatchResult is written as one JSON line per entry.
type BatchResult struct {
	URL         string           `json:"url"`
	Question    string           `json:"question,omitempty"`
	Summary     string           `json:"summary,omitempty"`
	Answer      string           `json:"answer,omitempty"`
	Features    *features.Bundle `json:"features,omitempty"`
	Probability *float64         `json:"probability,omitempty"`
	Error       string           `json:"error,omitempty"`
}

func readBatch(r io.Reader) (entries []BatchEntry, err error) {
	if err = yaml.NewDecoder(r).Decode(&entries); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode batch file: %w", err)
	}
	for i, e := range entries {
		if strings.TrimSpace(e.URL) == "" {
			return nil, fmt.Errorf("entry %d: url is required", i+1)
		}
	}
	return entries, nil
}

func (c BatchCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel, c.LogFormat)

	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open batch file: %w", err)
	}
	defer f.Close()
	entries, err := readBatch(f)
	if err != nil {
		return err
	}

	ic := client.New(c.ServerURL, c.ServerAPIKey)
	enc := json.NewEncoder(os.Stdout)
	for i, e := range entries {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Info("processing entry", slog.Int("index", i+1), slog.Int("count", len(entries)), slog.String("url", e.URL))
		result, err := runBatchEntry(ctx, ic, e)
		if err != nil {
			if !c.ContinueOnError {
				return fmt.Errorf("entry %d: %w", i+1, err)
			}
			log.Error("entry failed", slog.Int("index", i+1), slog.Any("error", err))
			result.Error = err.Error()
		}
		if err = enc.Encode(result); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

func runBatchEntry(ctx context.Context, ic client.Client, e BatchEntry) (result BatchResult, err error) {
	result.URL = e.URL
	result.Question = e.Question
	if e.Question == "" {
		resp, err := ic.SummarizePost(ctx, models.SummarizePostRequest{URL: e.URL})
		if err != nil {
			return result, err
		}
		result.Summary = resp.Summary
		return result, nil
	}
	resp, err := ic.QAPost(ctx, models.QAPostRequest{URL: e.URL, Question: e.Question})
	if err != nil {
		return result, err
	}
	result.Answer = resp.Answer
	result.Features = &resp.Features
	result.Probability = &resp.Probability
	return result, nil
}
