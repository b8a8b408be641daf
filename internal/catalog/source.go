package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// DefaultLocation is where the storefront publishes the product document.
const DefaultLocation = "data/tote_bag.json"

// maxDocumentSize caps how much of a response body is read.
const maxDocumentSize = 8 << 20

// Source fetches the raw product document from a fixed location.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Location() string
}

// NewSource returns an HTTPSource for http(s) locations and a FileSource for
// everything else. A zero timeout means the fetch is bounded only by ctx.
func NewSource(location string, timeout time.Duration) Source {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return &HTTPSource{URL: location, Client: &http.Client{Timeout: timeout}}
	}
	return &FileSource{Path: location}
}

// HTTPSource retrieves the document with a single GET request.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Location returns the URL the source reads from.
func (s *HTTPSource) Location() string {
	return s.URL
}

// Fetch performs the GET request. Non-2xx responses are errors.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

// FileSource reads the document from the local filesystem.
type FileSource struct {
	Path string
}

// Location returns the file path the source reads from.
func (s *FileSource) Location() string {
	return s.Path
}

// Fetch reads the file. ctx is only checked before the read starts.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(s.Path)
}

// Load fetches, decodes and validates the product document from src.
func Load(ctx context.Context, src Source) (*Document, error) {
	if src == nil {
		return nil, showcaseerrors.NewFetchError("", fmt.Errorf("no document source configured"))
	}

	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, showcaseerrors.NewFetchError(src.Location(), err)
	}

	doc, err := Decode(src.Location(), data)
	if err != nil {
		return nil, err
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}
