package client

import (
	"context"
	"strconv"

	"github.com/a-h/interectors/models"
	"github.com/a-h/jsonapi"
)

func New(baseURL, apiKey string) Client {
	return Client{
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type Client struct {
	baseURL string
	apiKey  string
}

func (c Client) SummarizePost(ctx context.Context, req models.SummarizePostRequest) (resp models.SummarizePostResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("summarize").String()
	if err != nil {
		return resp, err
	}
	return jsonapi.Post[models.SummarizePostRequest, models.SummarizePostResponse](ctx, url, req, jsonapi.WithRequestHeader("Authorization", c.apiKey))
}

func (c Client) QAPost(ctx context.Context, req models.QAPostRequest) (resp models.QAPostResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("qa").String()
	if err != nil {
		return resp, err
	}
	return jsonapi.Post[models.QAPostRequest, models.QAPostResponse](ctx, url, req, jsonapi.WithRequestHeader("Authorization", c.apiKey))
}

func (c Client) FeaturesPost(ctx context.Context, req models.FeaturesPostRequest) (resp models.FeaturesPostResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("features").String()
	if err != nil {
		return resp, err
	}
	return jsonapi.Post[models.FeaturesPostRequest, models.FeaturesPostResponse](ctx, url, req, jsonapi.WithRequestHeader("Authorization", c.apiKey))
}

// HistoryGet returns the caller's most recent interactions. A limit of zero uses the server's default.
func (c Client) HistoryGet(ctx context.Context, limit int) (resp models.HistoryGetResponse, err error) {
	u := jsonapi.URL(c.baseURL).Path("history")
	if limit > 0 {
		u = u.Query(map[string]string{"limit": strconv.Itoa(limit)})
	}
	url, err := u.String()
	if err != nil {
		return resp, err
	}
	return jsonapi.Get[models.HistoryGetResponse](ctx, url, jsonapi.WithRequestHeader("Authorization", c.apiKey))
}

func (c Client) HealthGet(ctx context.Context) (resp models.HealthGetResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("health").String()
	if err != nil {
		return resp, err
	}
	return jsonapi.Get[models.HealthGetResponse](ctx, url, jsonapi.WithRequestHeader("Authorization", c.apiKey))
}
