package domain

// Config mirrors ~/.skypaper/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Catalog             CatalogSettings   `yaml:"catalog"`
	Search              SearchSettings    `yaml:"search"`
	Selection           SelectionSettings `yaml:"selection"`
	Retry               RetrySettings     `yaml:"retry"`
	Paths               PathSettings      `yaml:"paths"`
	History             HistorySettings   `yaml:"history"`
	Sink                SinkSettings      `yaml:"sink"`
	Watch               WatchSettings     `yaml:"watch"`
}

// CatalogSettings locates the image catalog API.
type CatalogSettings struct {
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
	APIKey    string `yaml:"api_key"`
}

// SearchSettings captures the default keyword query.
type SearchSettings struct {
	Query     string   `yaml:"query"`
	MediaType string   `yaml:"media_type"`
	Keywords  []string `yaml:"keywords"`
}

// SelectionSettings controls which search result and which manifest asset is
// taken when multiple candidates exist. The upstream behavior here was never
// consistent, so both picks are explicit knobs rather than baked-in choices.
type SelectionSettings struct {
	ItemPick   string   `yaml:"item_pick"`  // first|last|random
	AssetPick  string   `yaml:"asset_pick"` // first|last
	Extensions []string `yaml:"extensions"`
}

// RetrySettings bound transient-failure retries for catalog and download calls.
type RetrySettings struct {
	Attempts     int `yaml:"attempts"`
	DelaySeconds int `yaml:"delay_seconds"`
}

// PathSettings locate the wallpaper and scratch directories.
type PathSettings struct {
	WallpaperDir string `yaml:"wallpaper_dir"`
	ScratchDir   string `yaml:"scratch_dir"`
	FilePrefix   string `yaml:"file_prefix"`
}

// HistorySettings configure the applied-wallpaper log.
type HistorySettings struct {
	Backend string `yaml:"backend"` // file|sqlite
	Path    string `yaml:"path"`
	Cap     int    `yaml:"cap"`
}

// SinkSettings select the wallpaper sink implementation.
type SinkSettings struct {
	Name string `yaml:"name"` // auto|plasma|gnome|macos|none
}

// WatchSettings control periodic operation.
type WatchSettings struct {
	IntervalHours int `yaml:"interval_hours"`
}
