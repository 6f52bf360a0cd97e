package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

type CLI struct {
	Serve     ServeCommand     `cmd:"serve" help:"Start the API server."`
	Summarize SummarizeCommand `cmd:"summarize" help:"Summarize a web page using the API server."`
	QA        QACommand        `cmd:"qa" help:"Ask a question about a web page using the API server."`
	Features  FeaturesCommand  `cmd:"features" help:"Compute the lexical features of a content, question and answer."`
	Ask       AskCommand       `cmd:"ask" help:"Interactively ask questions about a web page."`
	Batch     BatchCommand     `cmd:"batch" help:"Ask a list of questions read from a YAML file."`
	History   HistoryCommand   `cmd:"history" help:"List recent interactions."`
	Version   VersionCommand   `cmd:"version" help:"Print the version."`
}

func main() {
	// Values in .env are used when the environment doesn't already set them.
	_ = godotenv.Load()

	var cli CLI
	ctx := context.Background()
	kctx := kong.Parse(&cli, kong.UsageOnError(), kong.BindTo(ctx, (*context.Context)(nil)))
	if err := kctx.Run(); err != nil {
		log := getLogger("error", "json")
		log.Error("error", slog.Any("error", err))
		os.Exit(1)
	}
}

func getLogger(level, format string) *slog.Logger {
	ll := slog.LevelInfo
	switch level {
	case "debug":
		ll = slog.LevelDebug
	case "info":
		ll = slog.LevelInfo
	case "warn":
		ll = slog.LevelWarn
	case "error":
		ll = slog.LevelError
	}
	if format == "text" {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
			TimeFormat: time.Kitchen,
			Level:      ll,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: ll,
	}))
}
