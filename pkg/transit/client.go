package transit

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client issues provider requests. No retry logic: a failed fetch for one
// stop contributes zero records for that cycle and the next tick tries again.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Get fetches a fully-formed provider URL and returns the raw response body.
func (c *Client) Get(reqURL string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	// Public APIs often block default Go user agents
	req.Header.Set("User-Agent", "mta-tracker/1.0 (https://github.com/SashaBoguraev/mta-tracker)")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
