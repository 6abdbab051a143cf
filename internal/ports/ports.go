// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The orchestrator depends only on these
// abstractions, so the desktop integration, the catalog transport, and the
// history persistence can all be swapped without touching the pipeline.
package ports

import (
	"context"

	"github.com/doeshing/skypaper/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.skypaper/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CatalogClient searches the image catalog and resolves asset manifests.
type CatalogClient interface {
	Search(context.Context, domain.SearchQuery) ([]domain.CatalogItem, error)
	ResolveAsset(ctx context.Context, id string) (domain.AssetManifest, error)
}

// Downloader streams a resolved asset URL into the wallpaper directory.
// The id feeds the destination file naming scheme.
type Downloader interface {
	Download(ctx context.Context, url, id string) (domain.DownloadedFile, error)
}

// WallpaperSink applies a local image file as the desktop background.
// Apply must be idempotent: applying the same path twice is safe.
type WallpaperSink interface {
	Name() string
	Available() bool
	Apply(ctx context.Context, path string) error
}

// HistoryStore is the bounded append-only log of applied wallpapers.
// Record enforces the cap; Load returns entries oldest-to-newest, empty when
// nothing has been persisted yet.
type HistoryStore interface {
	Record(domain.HistoryEntry) error
	Load() ([]domain.HistoryEntry, error)
	Clear() error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
