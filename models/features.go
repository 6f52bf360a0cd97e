package models

import "github.com/a-h/interectors/features"

type FeaturesPostRequest struct {
	Content  string `json:"content"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FeaturesPostResponse = features.Bundle
