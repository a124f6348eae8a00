package googleapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"time"

	"skyline-samplegen/internal/redact"
)

// maxDocumentSize bounds a downloaded discovery document.
const maxDocumentSize = 32 << 20

type Fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch downloads the discovery document at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		// *url.Error repeats the raw URL, credentials included.
		var uerr *neturl.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("fetch discovery document %s: %w", redact.URL(url), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch discovery document: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read discovery document: %w", err)
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("read discovery document: larger than %d bytes", maxDocumentSize)
	}
	if !LooksLikeDiscovery(data) {
		return nil, fmt.Errorf("fetch discovery document: %s is not a discovery document", redact.URL(url))
	}
	return data, nil
}
