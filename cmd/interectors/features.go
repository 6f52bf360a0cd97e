package main

import (
	"context"

	"github.com/a-h/interectors/features"
)

type FeaturesCommand struct {
	Content       string `help:"The page content."`
	Question      string `help:"The question."`
	Answer        string `help:"The answer."`
	StopWordsFile string `help:"A file containing one stop word per line." env:"STOP_WORDS_FILE" default:""`
	MinKeywordLen int    `help:"The minimum number of characters in a keyword." env:"MIN_KEYWORD_LENGTH" default:"4"`
	Pretty        bool   `help:"Pretty print the JSON output." default:"true"`
}

func (c FeaturesCommand) Run(ctx context.Context) (err error) {
	stopWords, err := readStopWords(c.StopWordsFile)
	if err != nil {
		return err
	}
	extractor := features.NewExtractor(features.Options{
		MinLength: c.MinKeywordLen,
		StopWords: stopWords,
	})
	return writeJSON(extractor.Build(c.Content, c.Question, c.Answer), c.Pretty)
}
