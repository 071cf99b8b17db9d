package translator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
)

const (
	defaultTimeout = 30 * time.Second
	// maxErrorBody bounds how much of a non-2xx body ends up in an error.
	maxErrorBody = 512
)

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// get issues a single GET and returns the decoded body of a 2xx response.
// Every failure comes back as a *TransportError.
func get(ctx context.Context, client *http.Client, rawURL, userAgent string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	// Setting Accept-Encoding by hand turns off the transport's transparent
	// gzip handling, so both encodings are decoded in decodeBody.
	httpReq.Header.Set("Accept-Encoding", "gzip, br")
	httpReq.Header.Set("Accept", "application/json")
	if userAgent != "" {
		httpReq.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := decodeBody(resp)
	if err != nil {
		return nil, &TransportError{StatusCode: statusIfError(resp), Err: err}
	}
	defer body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}
	return data, nil
}

// decodeBody wraps the response body in a decoder for its Content-Encoding.
// Closing the result does not close resp.Body.
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	encoding := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))
	switch encoding {
	case "", "identity":
		return io.NopCloser(resp.Body), nil
	case "gzip":
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip body: %w", err)
		}
		return zr, nil
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

func statusIfError(resp *http.Response) int {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode
	}
	return 0
}
