package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"places2gpx/utils/errors"
)

// SourceService acquires the raw JSON payload, from a local file or over
// HTTP. Exactly one acquisition happens per run; any failure is fatal, no
// retries.
type SourceService struct {
	client *http.Client
}

func NewSourceService() *SourceService {
	return &SourceService{client: &http.Client{Timeout: 20 * time.Second}}
}

// LoadFile reads and decodes a local JSON document.
func (s *SourceService) LoadFile(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewSourceError(err)
	}
	defer f.Close()

	var payload any
	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return nil, errors.NewSourceError(fmt.Errorf("invalid JSON in %s: %w", path, err))
	}
	return payload, nil
}

// FetchURL performs a single GET against the endpoint and decodes the
// response body as JSON.
func (s *SourceService) FetchURL(ctx context.Context, url string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewSourceError(err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.NewSourceError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewSourceError(fmt.Errorf("GET %s: unexpected status %s", url, resp.Status))
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.NewSourceError(fmt.Errorf("invalid JSON from %s: %w", url, err))
	}
	return payload, nil
}
