package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
)

// Source opens the raw catalog document.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	// Location identifies the source in logs.
	Location() string
}

// NewSource returns an HTTPSource for http(s) locations and a FileSource
// otherwise.
func NewSource(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location)
	}
	return &FileSource{Path: location}
}

type FileSource struct {
	Path string
}

func (s *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	return f, nil
}

func (s *FileSource) Location() string {
	return s.Path
}

// HTTPSource fetches the catalog document with a GET request.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{url: url, client: &http.Client{}}
}

func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Error("failed to close catalog response body", "error", cerr)
		}
		return nil, fmt.Errorf("catalog fetch returned status %d: %s", resp.StatusCode, body)
	}
	return resp.Body, nil
}

func (s *HTTPSource) Location() string {
	return s.url
}
