// Package services contains the application use cases behind the CLI.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/ports"
)

// CycleService orchestrates one fetch->resolve->download->apply->record run.
// The pipeline is linear and short-circuits on the first stage failure;
// retries live inside the catalog client and downloader, never across stages.
type CycleService struct {
	ConfigProvider ports.ConfigProvider
	Catalog        ports.CatalogClient
	Downloader     ports.Downloader
	Sink           ports.WallpaperSink
	History        ports.HistoryStore
	Logger         ports.Logger

	// Now stamps history entries; nil means time.Now.
	Now func() time.Time
}

// Run executes a single wallpaper cycle. On failure the returned result's
// Stage names the stage that broke; completed side effects (a downloaded
// file when the sink fails, for example) are intentionally left in place.
func (s *CycleService) Run(req domain.CycleRequest) (domain.CycleResult, error) {
	if s.ConfigProvider == nil || s.Catalog == nil || s.Downloader == nil ||
		s.Sink == nil || s.History == nil || s.Logger == nil {
		return domain.CycleResult{}, errors.New("services.CycleService dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	result := domain.CycleResult{ID: uuid.NewString(), Stage: domain.StageIdle}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return result, fmt.Errorf("load config: %w", err)
	}

	query := cfg.DefaultQuery()
	if req.Query != "" {
		query.Query = req.Query
	}
	if len(req.Keywords) > 0 {
		query.Keywords = req.Keywords
	}

	result.Stage = domain.StageSearching
	s.Logger.Info("cycle searching", map[string]interface{}{"cycle": result.ID, "query": query.Query})
	items, err := s.Catalog.Search(ctx, query)
	if err != nil {
		return result, fmt.Errorf("search catalog: %w", err)
	}
	item, ok := domain.PickItem(items, cfg.ItemPickPolicy())
	if !ok {
		// No match is a clean outcome; nothing to change, nothing to record.
		s.Logger.Info("no catalog match", map[string]interface{}{"cycle": result.ID, "query": query.Query})
		result.Stage = domain.StageIdle
		result.NoMatch = true
		return result, nil
	}
	result.Item = item

	result.Stage = domain.StageResolving
	manifest, err := s.Catalog.ResolveAsset(ctx, item.ID)
	if err != nil {
		return result, fmt.Errorf("resolve asset %s: %w", item.ID, err)
	}
	href, err := manifest.SelectAssetHref(cfg.AllowedExtensions(), cfg.AssetPickPolicy())
	if err != nil {
		return result, fmt.Errorf("select asset: %w", err)
	}
	result.Asset = href

	result.Stage = domain.StageDownloading
	file, err := s.Downloader.Download(ctx, href, item.ID)
	if err != nil {
		return result, fmt.Errorf("download %s: %w", href, err)
	}
	result.File = &file

	result.Stage = domain.StageApplying
	if err := s.Sink.Apply(ctx, file.Path); err != nil {
		return result, fmt.Errorf("apply wallpaper: %w", err)
	}

	result.Stage = domain.StageRecording
	now := s.Now
	if now == nil {
		now = time.Now
	}
	entry := domain.HistoryEntry{Path: file.Path, AppliedAt: now()}
	if err := s.History.Record(entry); err != nil {
		// The wallpaper is already applied; report the bookkeeping failure
		// without pretending the cycle did nothing.
		return result, fmt.Errorf("record history: %w", err)
	}

	result.Stage = domain.StageIdle
	s.Logger.Info("cycle complete", map[string]interface{}{
		"cycle": result.ID,
		"item":  item.ID,
		"path":  file.Path,
		"sink":  s.Sink.Name(),
	})
	return result, nil
}
