package models

import "github.com/a-h/interectors/features"

type QAPostRequest struct {
	// URL of the page the question is about.
	URL      string `json:"url"`
	Question string `json:"question"`
}

type QAPostResponse struct {
	Answer   string          `json:"answer"`
	Features features.Bundle `json:"features"`
	// Probability mirrors Features.QuestionAnswerSimilarity.
	Probability float64 `json:"probability"`
}
