package timeedit

import (
	"context"
	"io"
	"net/http"
	"time"

	appLog "github.com/EdmanJohan/TimeEditAPI/internal/log"
)

// Doer issues a single HTTP request. *http.Client satisfies it; tests
// substitute their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

func defaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 15 * time.Second,
	}
}

// getBody performs a GET and returns the response body. A non-2xx status
// is logged with the body and returned as a *StatusError; the caller
// decides whether to continue.
func (c *Client) getBody(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Status: resp.StatusCode, Body: body}
		appLog.Error("request failed", statusErr,
			"url", rawURL,
			"status", resp.StatusCode,
			"body", truncateForLog(body),
		)
		return nil, statusErr
	}

	return body, nil
}

// truncateForLog keeps error-body logging bounded; TimeEdit error pages
// can be full HTML documents.
func truncateForLog(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max]) + "...(truncated)"
	}
	return string(body)
}
