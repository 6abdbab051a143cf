package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/pkg/logger"
	"github.com/doeshing/skypaper/internal/pkg/retry"
)

func testClient(t *testing.T, serverURL string, attempts int) *Client {
	t.Helper()
	base, err := url.Parse(serverURL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: 2 * time.Second},
		policy:     retry.Policy{Attempts: attempts, Delay: time.Millisecond},
		logger:     logger.NewStd(false),
	}
}

func TestClient_SearchParsesItemsAndEncodesQuery(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"collection":{"items":[
			{"data":[{"nasa_id":"X123","title":"Mars","center":"JPL","date_created":"2024-01-02"}]},
			{"data":[]},
			{"data":[{"nasa_id":"X456","title":"Jupiter"}]}
		]}}`))
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL, 0)
	items, err := c.Search(context.Background(), domain.SearchQuery{
		Query:    "space",
		Keywords: []string{"hd", "astronomy"},
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	want := []domain.CatalogItem{
		{ID: "X123", Title: "Mars", Center: "JPL", DateCreated: "2024-01-02"},
		{ID: "X456", Title: "Jupiter"},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("Search() mismatch (-want +got):\n%s", diff)
	}
	if gotQuery.Get("q") != "space" || gotQuery.Get("media_type") != "image" {
		t.Fatalf("query params = %v, want q=space media_type=image", gotQuery)
	}
	if gotQuery.Get("keywords") != "hd,astronomy" {
		t.Fatalf("keywords = %q, want hd,astronomy", gotQuery.Get("keywords"))
	}
}

func TestClient_SearchEmptyResultIsNotAnError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"collection":{"items":[]}}`))
	}))
	t.Cleanup(server.Close)

	items, err := testClient(t, server.URL, 0).Search(context.Background(), domain.SearchQuery{Query: "nothing"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("Search() = %v, want empty", items)
	}
}

func TestClient_SearchRejectsEmptyQuery(t *testing.T) {
	t.Parallel()

	c := testClient(t, "http://127.0.0.1:0", 0)
	if _, err := c.Search(context.Background(), domain.SearchQuery{}); !errors.Is(err, domain.ErrCatalogProtocol) {
		t.Fatalf("Search() error = %v, want ErrCatalogProtocol", err)
	}
}

func TestClient_RetriesTransientFailuresThenSucceeds(t *testing.T) {
	t.Parallel()

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 2 {
			http.Error(w, "upstream sad", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"collection":{"items":[{"data":[{"nasa_id":"OK1"}]}]}}`))
	}))
	t.Cleanup(server.Close)

	items, err := testClient(t, server.URL, 3).Search(context.Background(), domain.SearchQuery{Query: "space"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != "OK1" {
		t.Fatalf("Search() = %v, want one item OK1", items)
	}
	if calls != 3 {
		t.Fatalf("server saw %d calls, want 3", calls)
	}
}

func TestClient_SurfacesUnavailableAfterBudget(t *testing.T) {
	t.Parallel()

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	_, err := testClient(t, server.URL, 2).Search(context.Background(), domain.SearchQuery{Query: "space"})
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("Search() error = %v, want ErrCatalogUnavailable", err)
	}
	if calls != 3 {
		t.Fatalf("server saw %d calls, want 3 (1 + 2 retries)", calls)
	}
}

func TestClient_MalformedJSONIsProtocolErrorWithoutRetry(t *testing.T) {
	t.Parallel()

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"collection":{`))
	}))
	t.Cleanup(server.Close)

	_, err := testClient(t, server.URL, 5).Search(context.Background(), domain.SearchQuery{Query: "space"})
	if !errors.Is(err, domain.ErrCatalogProtocol) {
		t.Fatalf("Search() error = %v, want ErrCatalogProtocol", err)
	}
	if calls != 1 {
		t.Fatalf("server saw %d calls, want 1 (no retry on protocol errors)", calls)
	}
}

func TestClient_ResolveAsset(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/asset/X123":
			_, _ = w.Write([]byte(`{"collection":{"items":[
				{"href":"https://assets/x~thumb.jpg"},
				{"href":"https://assets/x~orig.tif"}
			]}}`))
		case "/asset/EMPTY":
			_, _ = w.Write([]byte(`{"collection":{"items":[]}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL, 0)

	manifest, err := c.ResolveAsset(context.Background(), "X123")
	if err != nil {
		t.Fatalf("ResolveAsset() error = %v", err)
	}
	want := domain.AssetManifest{ID: "X123", Hrefs: []string{"https://assets/x~thumb.jpg", "https://assets/x~orig.tif"}}
	if diff := cmp.Diff(want, manifest); diff != "" {
		t.Fatalf("ResolveAsset() mismatch (-want +got):\n%s", diff)
	}

	if _, err := c.ResolveAsset(context.Background(), "EMPTY"); !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("ResolveAsset(EMPTY) error = %v, want ErrAssetNotFound", err)
	}
}

func TestClient_SendsAPIKeyWhenConfigured(t *testing.T) {
	t.Parallel()

	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		_, _ = w.Write([]byte(`{"collection":{"items":[]}}`))
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL, 0)
	c.apiKey = "secret"
	if _, err := c.Search(context.Background(), domain.SearchQuery{Query: "space"}); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if gotKey != "secret" {
		t.Fatalf("api_key = %q, want secret", gotKey)
	}
}
