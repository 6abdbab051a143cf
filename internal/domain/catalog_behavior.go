package domain

import (
	"fmt"
	"math/rand"
	"net/url"
	"path"
	"strings"
)

// PickPolicy selects one element from an ordered candidate list. The public
// catalog's ordering is stable per query, so "first" and "last" are both
// reproducible; "random" trades reproducibility for variety.
type PickPolicy string

const (
	PickFirst  PickPolicy = "first"
	PickLast   PickPolicy = "last"
	PickRandom PickPolicy = "random"
)

// Valid reports whether the policy is one of the known values.
func (p PickPolicy) Valid() bool {
	switch p {
	case PickFirst, PickLast, PickRandom:
		return true
	}
	return false
}

// PickItem selects one search result according to policy. Returns false when
// items is empty, which callers treat as "no match", not an error.
func PickItem(items []CatalogItem, policy PickPolicy) (CatalogItem, bool) {
	if len(items) == 0 {
		return CatalogItem{}, false
	}
	switch policy {
	case PickLast:
		return items[len(items)-1], true
	case PickRandom:
		return items[rand.Intn(len(items))], true
	default:
		return items[0], true
	}
}

// SelectAssetHref picks the downloadable href from a manifest: filter hrefs
// whose extension matches the allow-list (case-insensitive), then apply the
// pick policy over the matches in manifest order. Random is not offered for
// assets; anything other than "last" behaves as "first".
func (m AssetManifest) SelectAssetHref(allowed []string, policy PickPolicy) (string, error) {
	if len(m.Hrefs) == 0 {
		return "", fmt.Errorf("manifest %s: %w", m.ID, ErrAssetNotFound)
	}
	var matches []string
	for _, href := range m.Hrefs {
		if extensionAllowed(href, allowed) {
			matches = append(matches, href)
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("manifest %s has no asset matching %v: %w", m.ID, allowed, ErrNoSuitableAsset)
	}
	if policy == PickLast {
		return matches[len(matches)-1], nil
	}
	return matches[0], nil
}

// HrefExtension returns the lower-cased extension of the URL's final path
// segment, without the leading dot. Empty when the URL has none.
func HrefExtension(href string) string {
	segment := href
	if u, err := url.Parse(href); err == nil && u.Path != "" {
		segment = u.Path
	}
	ext := strings.TrimPrefix(path.Ext(segment), ".")
	return strings.ToLower(ext)
}

func extensionAllowed(href string, allowed []string) bool {
	ext := HrefExtension(href)
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == strings.ToLower(strings.TrimPrefix(a, ".")) {
			return true
		}
	}
	return false
}
