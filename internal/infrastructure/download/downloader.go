// Package download streams resolved asset URLs into the wallpaper directory.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/pkg/filesystem"
	"github.com/doeshing/skypaper/internal/pkg/retry"
	"github.com/doeshing/skypaper/internal/ports"
)

const timestampLayout = "20060102_150405"

// Downloader implements ports.Downloader with a temp-file-then-rename scheme
// so a failed transfer never leaves a partial file at the final path.
type Downloader struct {
	wallpaperDir string
	scratchDir   string
	prefix       string
	httpClient   *http.Client
	policy       retry.Policy
	logger       ports.Logger
	now          func() time.Time
}

// New builds a Downloader from config.
func New(cfg domain.Config, log ports.Logger) *Downloader {
	wallpaperDir := filesystem.ExpandPath(cfg.Paths.WallpaperDir)
	if cfg.Paths.WallpaperDir == "" {
		wallpaperDir = filepath.Join(filesystem.UserHomeDir(), "Pictures", "skypaper")
	}
	scratchDir := filesystem.ExpandPath(cfg.Paths.ScratchDir)
	if cfg.Paths.ScratchDir == "" {
		scratchDir = filepath.Join(filesystem.UserHomeDir(), ".skypaper", "scratch")
	}
	prefix := cfg.Paths.FilePrefix
	if prefix == "" {
		prefix = "nasa"
	}
	return &Downloader{
		wallpaperDir: wallpaperDir,
		scratchDir:   scratchDir,
		prefix:       prefix,
		httpClient:   &http.Client{Timeout: domain.DefaultHTTPTimeout},
		policy:       retry.Policy{Attempts: cfg.RetryAttempts(), Delay: cfg.RetryDelay()},
		logger:       log,
		now:          time.Now,
	}
}

// Download implements ports.Downloader. The destination name follows
// {prefix}_{id}_{timestamp}.{ext} with ext taken from the URL's final path
// segment, lower-cased.
func (d *Downloader) Download(ctx context.Context, assetURL, id string) (domain.DownloadedFile, error) {
	ext := domain.HrefExtension(assetURL)
	if ext == "" {
		return domain.DownloadedFile{}, fmt.Errorf("asset url %q has no file extension: %w", assetURL, domain.ErrDownloadFailed)
	}
	for _, dir := range []string{d.wallpaperDir, d.scratchDir} {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return domain.DownloadedFile{}, fmt.Errorf("create %s: %v: %w", dir, err, domain.ErrDownloadFailed)
		}
	}

	var file domain.DownloadedFile
	err := retry.Do(ctx, d.policy, func() error {
		var attemptErr error
		file, attemptErr = d.attempt(ctx, assetURL, id, ext)
		return attemptErr
	})
	if err != nil {
		return domain.DownloadedFile{}, err
	}
	d.logger.Info("downloaded wallpaper", map[string]interface{}{"path": file.Path, "bytes": file.Size})
	return file, nil
}

// bodyReader records read failures so a truncated transfer can be told apart
// from a local write error after io.Copy.
type bodyReader struct {
	r   io.Reader
	err error
}

func (b *bodyReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err != nil && err != io.EOF {
		b.err = err
	}
	return n, err
}

// attempt performs one transfer. Network, status, and body-read failures are
// transient; local I/O failures are permanent. The temp file is removed on
// every failure path, including partial writes.
func (d *Downloader) attempt(ctx context.Context, assetURL, id, ext string) (domain.DownloadedFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return domain.DownloadedFile{}, retry.Permanent(fmt.Errorf("create request: %v: %w", err, domain.ErrDownloadFailed))
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return domain.DownloadedFile{}, fmt.Errorf("fetch %s: %v: %w", assetURL, err, domain.ErrDownloadFailed)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.DownloadedFile{}, fmt.Errorf("fetch %s returned status %d: %w", assetURL, resp.StatusCode, domain.ErrDownloadFailed)
	}

	tmp, err := os.CreateTemp(d.scratchDir, "skypaper-*.part")
	if err != nil {
		return domain.DownloadedFile{}, retry.Permanent(fmt.Errorf("create temp file: %v: %w", err, domain.ErrDownloadFailed))
	}
	tmpPath := tmp.Name()

	body := &bodyReader{r: resp.Body}
	size, err := io.Copy(tmp, body)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		if body.err != nil {
			return domain.DownloadedFile{}, fmt.Errorf("read body from %s: %v: %w", assetURL, err, domain.ErrDownloadFailed)
		}
		return domain.DownloadedFile{}, retry.Permanent(fmt.Errorf("write temp file: %v: %w", err, domain.ErrDownloadFailed))
	}

	downloadedAt := d.now()
	name := fmt.Sprintf("%s_%s_%s.%s", d.prefix, id, downloadedAt.Format(timestampLayout), ext)
	finalPath := filepath.Join(d.wallpaperDir, name)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return domain.DownloadedFile{}, retry.Permanent(fmt.Errorf("move into place: %v: %w", err, domain.ErrDownloadFailed))
	}
	_ = os.Chmod(finalPath, domain.FilePermissions)

	return domain.DownloadedFile{
		Path:         finalPath,
		Size:         size,
		SourceURL:    assetURL,
		DownloadedAt: downloadedAt,
	}, nil
}

var _ ports.Downloader = (*Downloader)(nil)
