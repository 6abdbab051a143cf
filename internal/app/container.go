package app

import (
	"context"
	"fmt"

	"github.com/doeshing/skypaper/internal/infrastructure/catalog"
	"github.com/doeshing/skypaper/internal/infrastructure/config"
	"github.com/doeshing/skypaper/internal/infrastructure/download"
	"github.com/doeshing/skypaper/internal/infrastructure/history"
	"github.com/doeshing/skypaper/internal/infrastructure/sink"
	"github.com/doeshing/skypaper/internal/pkg/logger"
	"github.com/doeshing/skypaper/internal/ports"
	"github.com/doeshing/skypaper/internal/services"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	CycleService  *services.CycleService
	DoctorService *services.DoctorService
	ConfigLoader  *config.FileLoader
	History       ports.HistoryStore
	Sink          ports.WallpaperSink
	Logger        ports.Logger
}

// Options configure container construction.
type Options struct {
	ConfigPath string
	Verbose    bool
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	log := logger.NewStd(opts.Verbose)

	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	catalogClient, err := catalog.NewClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init catalog client: %w", err)
	}

	var historyStore ports.HistoryStore
	switch cfg.History.Backend {
	case "", "file":
		historyStore = history.NewFileStore(cfg.History.Path, cfg.HistoryCap())
	case "sqlite":
		historyStore, err = history.NewSQLiteStore(cfg.History.Path, cfg.HistoryCap())
		if err != nil {
			return nil, fmt.Errorf("init history store: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown history backend %q (want file or sqlite)", cfg.History.Backend)
	}

	wallpaperSink, err := sink.FromConfig(cfg.Sink.Name, log)
	if err != nil {
		return nil, fmt.Errorf("init wallpaper sink: %w", err)
	}

	cycleService := &services.CycleService{
		ConfigProvider: cfgLoader,
		Catalog:        catalogClient,
		Downloader:     download.New(cfg, log),
		Sink:           wallpaperSink,
		History:        historyStore,
		Logger:         log,
	}

	doctorService := &services.DoctorService{
		ConfigProvider: cfgLoader,
		Catalog:        catalogClient,
		Sink:           wallpaperSink,
		History:        historyStore,
	}

	return &Container{
		CycleService:  cycleService,
		DoctorService: doctorService,
		ConfigLoader:  cfgLoader,
		History:       historyStore,
		Sink:          wallpaperSink,
		Logger:        log,
	}, nil
}
