// Package archive moves spreadsheet packages between a zip file and a
// directory tree.  Workbooks are zip containers of XML parts; tooling that
// rewrites number-format codes unpacks a workbook, edits the parts and packs
// it again.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/klauspost/compress/zip"
)

// ErrInsecurePath is returned by Unpack for entries whose names would land
// outside the target directory.
var ErrInsecurePath = errors.New("archive: insecure entry path")

type config struct {
	logger *slog.Logger
}

// Option configures Pack and WriteEntries.
type Option func(*config)

// WithLogger makes the archive functions report each entry at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// ── writing ───────────────────────────────────────────────────────────────────

// Pack writes every regular file under dir into a new zip file at zipPath.
// Entry names are slash-separated and relative to dir; entries are
// Deflate-compressed.
func Pack(zipPath, dir string, opts ...Option) (err error) {
	cfg := newConfig(opts)

	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("archive: pack %q: %w", zipPath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("archive: pack %q: %w", zipPath, cerr)
		}
	}()

	zw := zip.NewWriter(f)
	walkErr := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		return addEntry(zw, filepath.ToSlash(rel), data, cfg.logger)
	})
	if walkErr != nil {
		zw.Close()
		return fmt.Errorf("archive: pack %q: %w", dir, walkErr)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("archive: pack %q: %w", zipPath, err)
	}
	return nil
}

// WriteEntries writes entries to w as a zip archive, in name order.
func WriteEntries(w io.Writer, entries map[string][]byte, opts ...Option) error {
	cfg := newConfig(opts)
	zw := zip.NewWriter(w)
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := addEntry(zw, name, entries[name], cfg.logger); err != nil {
			zw.Close()
			return fmt.Errorf("archive: write entries: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("archive: write entries: %w", err)
	}
	return nil
}

func addEntry(zw *zip.Writer, name string, data []byte, logger *slog.Logger) error {
	fh := &zip.FileHeader{Name: name, Method: zip.Deflate}
	fh.SetMode(0o644)
	ew, err := zw.CreateHeader(fh)
	if err != nil {
		return fmt.Errorf("add %q: %w", name, err)
	}
	if _, err := ew.Write(data); err != nil {
		return fmt.Errorf("add %q: %w", name, err)
	}
	logger.Debug("archive entry added", "name", name, "size", len(data))
	return nil
}

// ── reading ───────────────────────────────────────────────────────────────────

// Unpack extracts every entry of the zip file at zipPath into dir, creating
// directories as needed.  Entries with absolute names or names that climb
// out of dir fail with [ErrInsecurePath] before anything is written for them.
func Unpack(zipPath, dir string) error {
	rc, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("archive: unpack %q: %w", zipPath, err)
	}
	defer rc.Close()

	for _, f := range rc.File {
		if err := extract(f, dir); err != nil {
			return fmt.Errorf("archive: unpack %q: %w", zipPath, err)
		}
	}
	return nil
}

func extract(f *zip.File, dir string) error {
	name := path.Clean(f.Name)
	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return fmt.Errorf("%w: %q", ErrInsecurePath, f.Name)
	}
	target := filepath.Join(dir, filepath.FromSlash(name))
	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	data, err := readFile(f)
	if err != nil {
		return fmt.Errorf("%q: %w", f.Name, err)
	}
	return os.WriteFile(target, data, 0o644)
}

// ReadEntry returns the contents of the named entry of the zip archive held
// in r.
func ReadEntry(r io.ReaderAt, size int64, name string) ([]byte, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("archive: read entry: %w", err)
	}
	for _, f := range zr.File {
		if f.Name == name {
			data, err := readFile(f)
			if err != nil {
				return nil, fmt.Errorf("archive: read entry %q: %w", name, err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("archive: %q not found in archive", name)
}

func readFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	_, readErr := io.Copy(&buf, rc)
	closeErr := rc.Close()
	if readErr != nil {
		return nil, readErr
	}
	// Checksum failures surface on Close.
	if closeErr != nil {
		return nil, closeErr
	}
	return buf.Bytes(), nil
}
