package domain

import (
	"os"
	"strings"
	"time"
)

// ResolveAPIKey returns the catalog API key, preferring the environment
// variable named in config over any inline value. Empty means anonymous
// access, which the public catalog permits at lower rate limits.
func (c Config) ResolveAPIKey() string {
	if c.Catalog.APIKeyEnv != "" {
		if key := os.Getenv(c.Catalog.APIKeyEnv); key != "" {
			return key
		}
	}
	return strings.TrimSpace(c.Catalog.APIKey)
}

// DefaultQuery builds the search query from config.
func (c Config) DefaultQuery() SearchQuery {
	return SearchQuery{
		Query:     c.Search.Query,
		MediaType: c.Search.MediaType,
		Keywords:  c.Search.Keywords,
	}
}

// ItemPickPolicy returns the configured search-result pick policy,
// defaulting to first.
func (c Config) ItemPickPolicy() PickPolicy {
	if p := PickPolicy(c.Selection.ItemPick); p.Valid() {
		return p
	}
	return PickFirst
}

// AssetPickPolicy returns the configured manifest pick policy. Random is not
// meaningful for assets and falls back to first.
func (c Config) AssetPickPolicy() PickPolicy {
	switch p := PickPolicy(c.Selection.AssetPick); p {
	case PickFirst, PickLast:
		return p
	}
	return PickFirst
}

// AllowedExtensions returns the normalized extension allow-list.
func (c Config) AllowedExtensions() []string {
	if len(c.Selection.Extensions) == 0 {
		return []string{"jpg", "jpeg", "png"}
	}
	out := make([]string, 0, len(c.Selection.Extensions))
	for _, ext := range c.Selection.Extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

// RetryAttempts returns the bounded retry budget for transient failures.
func (c Config) RetryAttempts() int {
	if c.Retry.Attempts > 0 {
		return c.Retry.Attempts
	}
	return DefaultRetryAttempts
}

// RetryDelay returns the fixed delay between retry attempts.
func (c Config) RetryDelay() time.Duration {
	if c.Retry.DelaySeconds > 0 {
		return time.Duration(c.Retry.DelaySeconds) * time.Second
	}
	return DefaultRetryDelay
}

// HistoryCap returns the maximum retained history entries.
func (c Config) HistoryCap() int {
	if c.History.Cap > 0 {
		return c.History.Cap
	}
	return DefaultHistoryCap
}

// WatchInterval returns the cadence of the watch loop.
func (c Config) WatchInterval() time.Duration {
	if c.Watch.IntervalHours > 0 {
		return time.Duration(c.Watch.IntervalHours) * time.Hour
	}
	return DefaultWatchInterval
}
