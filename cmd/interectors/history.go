package main

import (
	"context"
	"fmt"

	"github.com/a-h/interectors/client"
)

type HistoryCommand struct {
	ServerURL    string `help:"The URL of the API server." env:"INTERECTORS_URL" default:"http://localhost:8000"`
	ServerAPIKey string `help:"The API key for the API server." env:"INTERECTORS_API_KEY" default:""`
	Limit        int    `help:"The maximum number of interactions to list. Zero uses the server default." default:"0"`
	Pretty       bool   `help:"Pretty print the JSON output." default:"true"`
}

func (c HistoryCommand) Run(ctx context.Context) (err error) {
	ic := client.New(c.ServerURL, c.ServerAPIKey)
	resp, err := ic.HistoryGet(ctx, c.Limit)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}
	return writeJSON(resp, c.Pretty)
}
