package main

import (
	"context"
	"fmt"

	"github.com/a-h/interectors/client"
	"github.com/a-h/interectors/models"
)

type QACommand struct {
	ServerURL    string `help:"The URL of the API server." env:"INTERECTORS_URL" default:"http://localhost:8000"`
	ServerAPIKey string `help:"The API key for the API server." env:"INTERECTORS_API_KEY" default:""`
	URL          string `help:"The URL of the page the question is about." required:""`
	Question     string `help:"The question to ask." required:""`
	Pretty       bool   `help:"Pretty print the JSON output." default:"true"`
}

func (c QACommand) Run(ctx context.Context) (err error) {
	ic := client.New(c.ServerURL, c.ServerAPIKey)
	resp, err := ic.QAPost(ctx, models.QAPostRequest{
		URL:      c.URL,
		Question: c.Question,
	})
	if err != nil {
		return fmt.Errorf("failed to answer question: %w", err)
	}
	return writeJSON(resp, c.Pretty)
}
