// Package content retrieves the text of web pages.
package content

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable is returned when the text of a page can't be retrieved.
var ErrUnavailable = errors.New("content unavailable")

// Source returns the text content of the page at a URL.
type Source interface {
	Get(ctx context.Context, url string) (text string, err error)
}

// StatusError is returned when the page responds with a non-2xx status code.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("content unavailable: %s returned status %d", e.URL, e.StatusCode)
}

func (e StatusError) Unwrap() error {
	return ErrUnavailable
}
