// Package archive unpacks template archives (.zip, .7z and tar with optional
// gzip, bzip2 or xz compression) so their files can be overlaid on a new project.
package archive

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/xi2/xz"          // For reading .xz compressed data
	"gitlab.com/tozd/go/errors"
)

// Extensions lists every archive suffix Extract understands.
var Extensions = []string{".zip", ".7z", ".tar", ".tar.gz", ".tgz", ".tar.bz2", ".tar.xz"}

// Supported reports whether path has a known archive extension.
func Supported(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Extract unpacks src into dest.
func Extract(src, dest string) error {
	lower := strings.ToLower(src)
	var err error
	switch {
	case strings.HasSuffix(lower, ".zip"):
		logger.Debug("Compression type is zip")
		err = extractZip(src, dest)
	case strings.HasSuffix(lower, ".7z"):
		logger.Debug("Compression type is 7z")
		err = extract7z(src, dest)
	case strings.HasSuffix(lower, ".tar"), strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"),
		strings.HasSuffix(lower, ".tar.bz2"), strings.HasSuffix(lower, ".tar.xz"):
		logger.Debug("Compression type is tar")
		err = extractTar(src, dest)
	default:
		return errors.Errorf("unsupported archive format: %s (want one of %s)", src, strings.Join(Extensions, ", "))
	}
	if err != nil {
		return errors.Errorf("extracting %s: %w", src, err)
	}
	return nil
}

// ContentRoot returns the single top-level directory of an extracted archive
// (the "name-1.0/" wrapper of release tarballs), or dest when there is none.
func ContentRoot(dest string) (string, error) {
	entries, err := os.ReadDir(dest)
	if err != nil {
		return "", errors.Errorf("reading %s: %w", dest, err)
	}
	if len(entries) == 1 && entries[0].IsDir() {
		return filepath.Join(dest, entries[0].Name()), nil
	}
	return dest, nil
}

// safeJoin resolves an archive entry name below dest, rejecting absolute
// paths and ".." components.
func safeJoin(dest, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if !filepath.IsLocal(clean) {
		return "", errors.Errorf("archive entry escapes destination: %s", name)
	}
	return filepath.Join(dest, clean), nil
}

// writeEntry copies r into target, creating parent directories.
func writeEntry(target string, r io.Reader, mode fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	perm := mode.Perm()
	if perm == 0 {
		perm = 0o644
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// extractTar handles plain and compressed tar variants.
func extractTar(src, dest string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	lower := strings.ToLower(src)
	var reader io.Reader = f
	switch {
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(lower, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(lower, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return err
		}
		reader = xzr
	}

	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil // End of archive
		}
		if err != nil {
			return err
		}

		target, err := safeJoin(dest, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeEntry(target, tr, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		default:
			// links and devices have no place in a project template
			logger.Debug("Skipping tar entry %s (type %c)", hdr.Name, hdr.Typeflag)
		}
	}
}

// extractZip extracts a .zip archive.
func extractZip(src, dest string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		target, err := safeJoin(dest, f.Name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if !f.Mode().IsRegular() {
			logger.Debug("Skipping zip entry %s (mode %s)", f.Name, f.Mode())
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = writeEntry(target, rc, f.Mode())
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// extract7z handles .7z extraction using the sevenzip library.
func extract7z(src, dest string) error {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return errors.Errorf("failed to open 7z archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		target, err := safeJoin(dest, f.Name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if !f.Mode().IsRegular() {
			logger.Debug("Skipping 7z entry %s (mode %s)", f.Name, f.Mode())
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = writeEntry(target, rc, f.Mode())
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
