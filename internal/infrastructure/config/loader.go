package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/pkg/filesystem"
	"github.com/doeshing/skypaper/internal/ports"
)

// FileLoader loads YAML configuration from ~/.skypaper/config.yaml
// (overridable via SKYPAPER_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is replaced by the
// default config, which is also written back so users have something to edit.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if err := write(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

// Path resolves the active config file path.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv("SKYPAPER_CONFIG"); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".skypaper", "config.yaml")
}

func write(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Default returns the configuration written on first run.
func Default() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Catalog: domain.CatalogSettings{
			BaseURL:   domain.DefaultCatalogBaseURL,
			APIKeyEnv: "NASA_API_KEY",
		},
		Search: domain.SearchSettings{
			Query:     "space",
			MediaType: "image",
			Keywords:  []string{"hd", "space", "astronomy"},
		},
		Selection: domain.SelectionSettings{
			ItemPick:   string(domain.PickFirst),
			AssetPick:  string(domain.PickFirst),
			Extensions: []string{"jpg", "jpeg", "png"},
		},
		Retry: domain.RetrySettings{
			Attempts:     domain.DefaultRetryAttempts,
			DelaySeconds: 1,
		},
		Paths: domain.PathSettings{
			WallpaperDir: "~/Pictures/skypaper",
			ScratchDir:   "~/.skypaper/scratch",
			FilePrefix:   "nasa",
		},
		History: domain.HistorySettings{
			Backend: "file",
			Cap:     domain.DefaultHistoryCap,
		},
		Sink: domain.SinkSettings{Name: "auto"},
		Watch: domain.WatchSettings{
			IntervalHours: 6,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = domain.DefaultCatalogBaseURL
	}
	if cfg.Search.Query == "" {
		cfg.Search.Query = "space"
	}
	if cfg.Search.MediaType == "" {
		cfg.Search.MediaType = "image"
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = "file"
	}
	if cfg.Sink.Name == "" {
		cfg.Sink.Name = "auto"
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
