package models

type HealthGetResponse struct {
	Status string `json:"status"`
}

type RootGetResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
