package models

type SummarizePostRequest struct {
	// URL of the page to summarize.
	URL string `json:"url"`
}

type SummarizePostResponse struct {
	Summary string `json:"summary"`
}
