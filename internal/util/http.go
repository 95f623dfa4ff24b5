package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Some image hosts reject requests without a browser-like identity.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// GetBytes fetches url and returns the response body.
// Any non-2xx status is an error; the request is bounded by a 15s timeout.
func GetBytes(ctx context.Context, url string) ([]byte, error) {
	client := http.Client{Timeout: 15 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s for %s", resp.Status, url)
	}
	return io.ReadAll(resp.Body)
}
