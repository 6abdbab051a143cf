package domain

import "time"

// File permission constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the default permission for downloaded images (rw-r--r--)
	FilePermissions = 0o644
	// SecureFilePermissions is the permission for the config file (rw-------)
	SecureFilePermissions = 0o600
)

// Timeout and cadence constants
const (
	// DefaultHTTPTimeout bounds a single catalog or download request.
	DefaultHTTPTimeout = 60 * time.Second
	// DefaultRetryDelay is the fixed pause between transient-failure retries.
	DefaultRetryDelay = time.Second
	// DefaultWatchInterval is how often the watch loop runs a cycle.
	DefaultWatchInterval = 6 * time.Hour
)

// Limit constants
const (
	// DefaultRetryAttempts bounds retries of a transiently failing stage call.
	DefaultRetryAttempts = 3
	// DefaultHistoryCap is the maximum retained wallpaper history entries.
	DefaultHistoryCap = 50
)

// DefaultCatalogBaseURL is the public NASA Image and Video Library API.
const DefaultCatalogBaseURL = "https://images-api.nasa.gov"
