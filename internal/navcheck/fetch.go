package navcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const maxFetchBytes = 10 << 20

// HTTPFetch returns a FetchFunc backed by client. A nil client uses
// http.DefaultClient.
func HTTPFetch(client *http.Client) FetchFunc {
	if client == nil {
		client = http.DefaultClient
	}
	return func(ctx context.Context, url string) (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "text/html,application/xhtml+xml")

		resp, err := client.Do(req)
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", url, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
		if err != nil {
			return "", fmt.Errorf("read %s: %w", url, err)
		}
		return string(body), nil
	}
}
