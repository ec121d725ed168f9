package archive

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"gitlab.com/tozd/go/errors"
)

// IsURL reports whether src should be downloaded rather than opened.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Download fetches rawURL into dir and returns the local path. The file keeps
// the URL's base name so Extract can pick the format from its extension.
func Download(ctx context.Context, client *http.Client, rawURL, dir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Errorf("parsing %s: %w", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." || !Supported(name) {
		return "", errors.Errorf("cannot tell archive format of %s (want one of %s)", rawURL, strings.Join(Extensions, ", "))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", errors.Errorf("building request for %s: %w", rawURL, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Errorf("failed to GET %s: %w", rawURL, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("Failed to close response body: %v", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("GET %s: HTTP status %d", rawURL, resp.StatusCode)
	}

	destPath := filepath.Join(dir, name)
	out, err := os.Create(destPath)
	if err != nil {
		return "", errors.Errorf("failed to create file %s: %w", destPath, err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return "", errors.Errorf("failed to write response to file: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", errors.Errorf("closing %s: %w", destPath, err)
	}

	logger.Debug("Downloaded %s to %s", rawURL, destPath)
	return destPath, nil
}
