package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	DefaultTimeout   = 10 * time.Second
	DefaultMaxBytes  = 5 * 1024 * 1024
	DefaultMaxChars  = 10000
)

type HTTPSourceOptions struct {
	// UserAgent sent with each request.
	UserAgent string
	// Timeout for the whole fetch, including reading the body.
	Timeout time.Duration
	// MaxBytes of the response body that are read.
	MaxBytes int64
	// MaxChars of text returned. Negative disables truncation.
	MaxChars int
}

func NewHTTPSource(log *slog.Logger, client *http.Client, opts HTTPSourceOptions) HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.MaxChars == 0 {
		opts.MaxChars = DefaultMaxChars
	}
	return HTTPSource{
		log:    log,
		client: client,
		opts:   opts,
	}
}

// HTTPSource fetches pages over HTTP and extracts their text.
type HTTPSource struct {
	log    *slog.Logger
	client *http.Client
	opts   HTTPSourceOptions
}

var _ Source = HTTPSource{}

func (s HTTPSource) Get(ctx context.Context, pageURL string) (text string, err error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid URL: %w", ErrUnavailable, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: invalid URL %q: an absolute http or https URL is required", ErrUnavailable, pageURL)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %w", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/pdf,text/plain;q=0.9,*/*;q=0.8")

	s.log.Debug("fetching page", slog.String("url", pageURL))
	res, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to fetch page: %w", ErrUnavailable, err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", StatusError{URL: pageURL, StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, s.opts.MaxBytes))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read page: %w", ErrUnavailable, err)
	}

	text, err = s.extract(ctx, mediaType(res.Header.Get("Content-Type"), body), body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to extract text: %w", ErrUnavailable, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: no text found at %s", ErrUnavailable, pageURL)
	}

	text, err = Truncate(text, s.opts.MaxChars)
	if err != nil {
		return "", fmt.Errorf("%w: failed to truncate text: %w", ErrUnavailable, err)
	}
	s.log.Debug("fetched page", slog.String("url", pageURL), slog.Int("bytes", len(body)), slog.Int("chars", len([]rune(text))))
	return text, nil
}

func mediaType(contentType string, body []byte) string {
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "text/html"
	}
	return mt
}

func (s HTTPSource) extract(ctx context.Context, mt string, body []byte) (string, error) {
	switch {
	case mt == "application/pdf":
		return joinDocs(documentloaders.NewPDF(bytes.NewReader(body), int64(len(body))).Load(ctx))
	case mt == "text/html", mt == "application/xhtml+xml":
		return ExtractHTMLText(bytes.NewReader(body))
	case strings.HasPrefix(mt, "text/"):
		return joinDocs(documentloaders.NewText(bytes.NewReader(body)).Load(ctx))
	default:
		return ExtractHTMLText(bytes.NewReader(body))
	}
}

func joinDocs(docs []schema.Document, err error) (string, error) {
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, doc := range docs {
		sb.WriteString(doc.PageContent)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
