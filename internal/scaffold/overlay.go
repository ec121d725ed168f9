package scaffold

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/archive"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"gitlab.com/tozd/go/errors"
)

// IdentifierToken in an overlay path is replaced by the project identifier,
// so "include/__project__/config.hpp" lands in include/<identifier>/.
const IdentifierToken = "__project__"

// stateFileName mirrors state.FileName; an archive must never carry one.
const stateFileName = ".init-cpp-proj.json"

// Overlay extracts the template archive at archivePath (a local file or an
// http(s) URL) and writes every file it contains through w, after the
// built-in templates. Files ending in .tmpl are rendered with data and lose
// the suffix. With stripTopLevel, a single directory wrapping the whole
// archive is removed from every path.
func Overlay(ctx context.Context, w *Writer, archivePath string, data ProjectData, stripTopLevel bool) error {
	if !archive.IsURL(archivePath) && !archive.Supported(archivePath) {
		return errors.Errorf("unsupported template archive %s (want one of %s)",
			archivePath, strings.Join(archive.Extensions, ", "))
	}

	tmp, err := os.MkdirTemp("", "init-cpp-proj-overlay-*")
	if err != nil {
		return errors.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	if archive.IsURL(archivePath) {
		if archivePath, err = archive.Download(ctx, http.DefaultClient, archivePath, tmp); err != nil {
			return err
		}
	}

	// extract next to the download, not over it
	content := filepath.Join(tmp, "content")
	if err := os.Mkdir(content, 0o755); err != nil {
		return errors.Errorf("creating temp dir: %w", err)
	}
	if err := archive.Extract(archivePath, content); err != nil {
		return err
	}
	root := content
	if stripTopLevel {
		if root, err = archive.ContentRoot(content); err != nil {
			return err
		}
	}
	logger.Debug("Overlaying %s from %s", archivePath, root)

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = strings.ReplaceAll(filepath.ToSlash(rel), IdentifierToken, data.Identifier)
		if strings.TrimSuffix(rel, ".tmpl") == stateFileName {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return errors.Errorf("reading %s: %w", rel, err)
		}
		if strings.HasSuffix(rel, ".tmpl") {
			rendered, err := execute(rel, string(body), data)
			if err != nil {
				return err
			}
			rel = strings.TrimSuffix(rel, ".tmpl")
			body = []byte(rendered)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		_, err = w.Write(rel, body, info.Mode().Perm())
		return err
	})
}
