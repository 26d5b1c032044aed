package loader

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Fetcher retrieves the raw text of a document by identifier.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (string, error)
}

// FetchFunc adapts a function to the Fetcher interface.
type FetchFunc func(ctx context.Context, id string) (string, error)

// Fetch calls f(ctx, id).
func (f FetchFunc) Fetch(ctx context.Context, id string) (string, error) {
	return f(ctx, id)
}

// DefaultMaxDocumentSize caps how much of a single document is read (8 MB).
const DefaultMaxDocumentSize int64 = 8 << 20

// FileFetcher reads documents from a filesystem. With a nil FS it reads
// from the OS filesystem relative to BaseDir.
type FileFetcher struct {
	FS      fs.FS
	BaseDir string
	// MaxSize caps the bytes read per document; zero means
	// DefaultMaxDocumentSize.
	MaxSize int64
}

// Fetch reads the file named by id.
func (f FileFetcher) Fetch(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		file io.ReadCloser
		err  error
	)
	if f.FS != nil {
		file, err = f.FS.Open(filepath.ToSlash(strings.TrimPrefix(id, "./")))
	} else {
		path := id
		if f.BaseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(f.BaseDir, path)
		}
		file, err = os.Open(path)
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	limit := f.MaxSize
	if limit <= 0 {
		limit = DefaultMaxDocumentSize
	}
	return readLimited(file, limit)
}

// readLimited reads at most limit bytes from r and fails if more remain.
func readLimited(r io.Reader, limit int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("document exceeds %d bytes", limit)
	}
	return string(data), nil
}

// HTTPFetcher retrieves documents over HTTP(S).
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher whose client times out after timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPFetcher{Client: &http.Client{Timeout: timeout}}
}

// Fetch GETs the URL id and returns the response body as text.
func (h *HTTPFetcher) Fetch(ctx context.Context, id string) (string, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, id, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.1")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	text, err := readLimited(resp.Body, DefaultMaxDocumentSize)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return text, nil
}

// Router sends URL identifiers to Remote and everything else to Local.
type Router struct {
	Local  Fetcher
	Remote Fetcher
}

// Fetch dispatches id to the matching fetcher.
func (r Router) Fetch(ctx context.Context, id string) (string, error) {
	if IsURL(id) {
		if r.Remote == nil {
			return "", fmt.Errorf("no remote fetcher configured for %s", id)
		}
		return r.Remote.Fetch(ctx, id)
	}
	if r.Local == nil {
		return "", fmt.Errorf("no local fetcher configured for %s", id)
	}
	return r.Local.Fetch(ctx, id)
}

// IsURL reports whether id is an http or https URL.
func IsURL(id string) bool {
	lower := strings.ToLower(id)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
