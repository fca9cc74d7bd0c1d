package changelog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultRemoteTimeout bounds remote changelog fetches.
const DefaultRemoteTimeout = 5 * time.Second

// IsRemotePath reports whether a changelog override points at an HTTP(S)
// resource rather than a local file.
func IsRemotePath(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// FetchRemote downloads a changelog over HTTP, e.g. from a raw GitHub URL.
// The context controls timeout and cancellation. A 404 maps to
// MissingChangelogError so remote and local misses report the same way.
func FetchRemote(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching remote changelog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &MissingChangelogError{Path: url}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching remote changelog: unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading remote changelog: %w", err)
	}

	return &Document{Path: url, Content: string(body)}, nil
}

// LoadSource loads a changelog from a local path or an HTTP(S) URL.
func LoadSource(ctx context.Context, path string) (*Document, error) {
	if IsRemotePath(path) {
		ctx, cancel := context.WithTimeout(ctx, DefaultRemoteTimeout)
		defer cancel()
		return FetchRemote(ctx, path)
	}
	return Load(path)
}
