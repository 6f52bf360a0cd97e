package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/a-h/interectors/client"
	"github.com/a-h/interectors/models"
)

type SummarizeCommand struct {
	ServerURL    string `help:"The URL of the API server." env:"INTERECTORS_URL" default:"http://localhost:8000"`
	ServerAPIKey string `help:"The API key for the API server." env:"INTERECTORS_API_KEY" default:""`
	URL          string `help:"The URL of the page to summarize." required:""`
	Pretty       bool   `help:"Pretty print the JSON output." default:"true"`
}

func (c SummarizeCommand) Run(ctx context.Context) (err error) {
	ic := client.New(c.ServerURL, c.ServerAPIKey)
	resp, err := ic.SummarizePost(ctx, models.SummarizePostRequest{
		URL: c.URL,
	})
	if err != nil {
		return fmt.Errorf("failed to summarize page: %w", err)
	}
	return writeJSON(resp, c.Pretty)
}

func writeJSON(v any, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
