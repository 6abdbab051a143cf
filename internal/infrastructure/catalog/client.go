// Package catalog talks to the NASA Image and Video Library HTTP API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/pkg/retry"
	"github.com/doeshing/skypaper/internal/ports"
)

const userAgent = "skypaper/0.1"

// Client implements ports.CatalogClient against the public image catalog.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	policy     retry.Policy
	logger     ports.Logger
}

// NewClient builds a Client from config. The base URL must parse; everything
// else falls back to defaults.
func NewClient(cfg domain.Config, log ports.Logger) (*Client, error) {
	base := strings.TrimSpace(cfg.Catalog.BaseURL)
	if base == "" {
		base = domain.DefaultCatalogBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse catalog base_url %q: %w", base, err)
	}
	return &Client{
		baseURL:    u,
		apiKey:     cfg.ResolveAPIKey(),
		httpClient: &http.Client{Timeout: domain.DefaultHTTPTimeout},
		policy:     retry.Policy{Attempts: cfg.RetryAttempts(), Delay: cfg.RetryDelay()},
		logger:     log,
	}, nil
}

// searchResponse mirrors the {collection:{items:[...]}} search payload.
type searchResponse struct {
	Collection *struct {
		Items []struct {
			Data []struct {
				NasaID      string `json:"nasa_id"`
				Title       string `json:"title"`
				Description string `json:"description"`
				Center      string `json:"center"`
				DateCreated string `json:"date_created"`
			} `json:"data"`
		} `json:"items"`
	} `json:"collection"`
}

// assetResponse mirrors the {collection:{items:[{href}]}} manifest payload.
type assetResponse struct {
	Collection *struct {
		Items []struct {
			Href string `json:"href"`
		} `json:"items"`
	} `json:"collection"`
}

// Search implements ports.CatalogClient. An empty result list is a valid
// empty slice, not an error.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) ([]domain.CatalogItem, error) {
	if strings.TrimSpace(query.Query) == "" {
		return nil, fmt.Errorf("empty search query: %w", domain.ErrCatalogProtocol)
	}

	values := url.Values{}
	values.Set("q", query.Query)
	mediaType := query.MediaType
	if mediaType == "" {
		mediaType = "image"
	}
	values.Set("media_type", mediaType)
	if len(query.Keywords) > 0 {
		values.Set("keywords", strings.Join(query.Keywords, ","))
	}
	if c.apiKey != "" {
		values.Set("api_key", c.apiKey)
	}
	rel := &url.URL{Path: "/search", RawQuery: values.Encode()}

	var payload searchResponse
	if err := c.get(ctx, rel, &payload); err != nil {
		return nil, err
	}
	if payload.Collection == nil {
		return nil, fmt.Errorf("search response missing collection: %w", domain.ErrCatalogProtocol)
	}

	items := make([]domain.CatalogItem, 0, len(payload.Collection.Items))
	for _, raw := range payload.Collection.Items {
		if len(raw.Data) == 0 || raw.Data[0].NasaID == "" {
			continue
		}
		d := raw.Data[0]
		items = append(items, domain.CatalogItem{
			ID:          d.NasaID,
			Title:       d.Title,
			Description: d.Description,
			Center:      d.Center,
			DateCreated: d.DateCreated,
		})
	}
	c.logger.Debug("catalog search", map[string]interface{}{"query": query.Query, "results": len(items)})
	return items, nil
}

// ResolveAsset implements ports.CatalogClient.
func (c *Client) ResolveAsset(ctx context.Context, id string) (domain.AssetManifest, error) {
	if strings.TrimSpace(id) == "" {
		return domain.AssetManifest{}, fmt.Errorf("empty asset id: %w", domain.ErrCatalogProtocol)
	}

	rel := &url.URL{Path: "/asset/" + id}
	if c.apiKey != "" {
		rel.RawQuery = url.Values{"api_key": {c.apiKey}}.Encode()
	}

	var payload assetResponse
	if err := c.get(ctx, rel, &payload); err != nil {
		return domain.AssetManifest{}, err
	}
	if payload.Collection == nil {
		return domain.AssetManifest{}, fmt.Errorf("asset response missing collection: %w", domain.ErrCatalogProtocol)
	}
	if len(payload.Collection.Items) == 0 {
		return domain.AssetManifest{}, fmt.Errorf("asset %s: %w", id, domain.ErrAssetNotFound)
	}

	manifest := domain.AssetManifest{ID: id, Hrefs: make([]string, 0, len(payload.Collection.Items))}
	for _, item := range payload.Collection.Items {
		if item.Href != "" {
			manifest.Hrefs = append(manifest.Hrefs, item.Href)
		}
	}
	return manifest, nil
}

// get performs one GET with retries. Network failures and non-2xx statuses
// are transient; decode failures are permanent protocol errors.
func (c *Client) get(ctx context.Context, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	return retry.Do(ctx, c.policy, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
		if err != nil {
			return retry.Permanent(fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("execute request %s: %v: %w", rel.Path, err, domain.ErrCatalogUnavailable)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			c.logger.Warn("catalog request failed", map[string]interface{}{"path": rel.Path, "status": resp.StatusCode})
			return fmt.Errorf("catalog %s returned status %d: %w", rel.Path, resp.StatusCode, domain.ErrCatalogUnavailable)
		}
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return retry.Permanent(fmt.Errorf("decode %s response: %v: %w", rel.Path, err, domain.ErrCatalogProtocol))
		}
		return nil
	})
}

var _ ports.CatalogClient = (*Client)(nil)
