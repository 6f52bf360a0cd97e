package post

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/a-h/interectors/content"
	"github.com/a-h/interectors/db"
	"github.com/a-h/interectors/features"
	"github.com/a-h/interectors/models"
	"github.com/a-h/interectors/orchestrator"
	"github.com/google/go-cmp/cmp"
)

type answererFunc func(ctx context.Context, url, question string) (orchestrator.Answer, error)

func (f answererFunc) Answer(ctx context.Context, url, question string) (orchestrator.Answer, error) {
	return f(ctx, url, question)
}

type recorder struct {
	interactions []db.Interaction
	err          error
}

func (r *recorder) InteractionPut(ctx context.Context, i db.Interaction) (int64, error) {
	r.interactions = append(r.interactions, i)
	return int64(len(r.interactions)), r.err
}

func TestHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bundle := features.Build("Gophers write programs.", "Who writes programs?", "Gophers write programs.")
	answer := answererFunc(func(ctx context.Context, url, question string) (orchestrator.Answer, error) {
		switch url {
		case "https://example.com/missing":
			return orchestrator.Answer{}, content.StatusError{URL: url, StatusCode: http.StatusNotFound}
		case "https://example.com/offline":
			return orchestrator.Answer{}, errors.Join(orchestrator.ErrGeneration, errors.New("model offline"))
		}
		return orchestrator.Answer{
			Text:        "Gophers write programs.",
			Features:    bundle,
			Probability: bundle.QuestionAnswerSimilarity,
		}, nil
	})

	tests := []struct {
		name                 string
		body                 string
		recorderErr          error
		expectedStatus       int
		expectedResponse     *models.QAPostResponse
		expectedInteractions []db.Interaction
	}{
		{
			name:           "answers include features",
			body:           `{"url": "https://example.com/gophers", "question": "Who writes programs?"}`,
			expectedStatus: http.StatusOK,
			expectedResponse: &models.QAPostResponse{
				Answer:      "Gophers write programs.",
				Features:    bundle,
				Probability: bundle.QuestionAnswerSimilarity,
			},
			expectedInteractions: []db.Interaction{
				{
					User:      "anonymous",
					Kind:      "qa",
					URL:       "https://example.com/gophers",
					Question:  "Who writes programs?",
					Response:  "Gophers write programs.",
					CreatedAt: now,
				},
			},
		},
		{
			name:           "recording failures don't fail the request",
			body:           `{"url": "https://example.com/gophers", "question": "Who writes programs?"}`,
			recorderErr:    errors.New("database offline"),
			expectedStatus: http.StatusOK,
			expectedResponse: &models.QAPostResponse{
				Answer:      "Gophers write programs.",
				Features:    bundle,
				Probability: bundle.QuestionAnswerSimilarity,
			},
		},
		{
			name:           "invalid JSON is a bad request",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-string fields are a bad request",
			body:           `{"url": 123, "question": ["why"]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "a question is required",
			body:           `{"url": "https://example.com/gophers"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unavailable content is a bad gateway",
			body:           `{"url": "https://example.com/missing", "question": "Why?"}`,
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "generation failures are internal server errors",
			body:           `{"url": "https://example.com/offline", "question": "Why?"}`,
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{err: tt.recorderErr}
			h := New(log, answer, rec)
			h.now = func() time.Time { return now }

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/qa", strings.NewReader(tt.body))
			h.ServeHTTP(w, r)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedResponse != nil {
				var actual models.QAPostResponse
				if err := json.Unmarshal(w.Body.Bytes(), &actual); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if diff := cmp.Diff(*tt.expectedResponse, actual); diff != "" {
					t.Error(diff)
				}
			}
			if tt.expectedInteractions != nil {
				if diff := cmp.Diff(tt.expectedInteractions, rec.interactions); diff != "" {
					t.Error(diff)
				}
			}
		})
	}
}

func TestResponseFieldNames(t *testing.T) {
	b, err := json.Marshal(models.QAPostResponse{
		Features: features.Build("", "", ""),
	})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	var m map[string]any
	if err = json.Unmarshal(b, &m); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	for _, field := range []string{"answer", "features", "probability"} {
		if _, ok := m[field]; !ok {
			t.Errorf("missing field %q", field)
		}
	}
	f := m["features"].(map[string]any)
	for _, field := range []string{
		"content_question_similarity",
		"content_answer_similarity",
		"question_answer_similarity",
		"top_content_keywords",
		"top_question_keywords",
		"top_answer_keywords",
		"content_length",
		"answer_length",
	} {
		if _, ok := f[field]; !ok {
			t.Errorf("missing feature %q", field)
		}
	}
	if _, isList := f["top_content_keywords"].([]any); !isList {
		t.Errorf("expected top_content_keywords to be a list, got %v", f["top_content_keywords"])
	}
}
