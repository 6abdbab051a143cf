// Package domain defines core business entities and value objects for skypaper.
//
// This file contains the catalog search and asset types. The domain layer is
// independent of infrastructure concerns and represents pure business data.
package domain

// SearchQuery describes one keyword search against the image catalog.
// Immutable once built; the orchestrator derives it from config plus any
// CLI overrides.
type SearchQuery struct {
	Query     string
	MediaType string
	Keywords  []string
}

// CatalogItem is one search result. ID is catalog-unique (the NASA ID in the
// public image library) and is the handle used to resolve downloadable assets.
type CatalogItem struct {
	ID          string
	Title       string
	Description string
	Center      string
	DateCreated string
}

// AssetManifest lists the downloadable renditions of a catalog item. Hrefs
// keep manifest order; observed catalogs tend to go thumbnail-first and
// original-last but the API does not guarantee it, so selection filters by
// extension rather than trusting position.
type AssetManifest struct {
	ID    string
	Hrefs []string
}
