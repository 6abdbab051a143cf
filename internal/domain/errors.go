package domain

import "errors"

// Sentinel errors for the pipeline stages. Adapters wrap these with %w so the
// orchestrator and CLI can classify failures with errors.Is.
var (
	// ErrCatalogUnavailable reports a network failure or non-2xx status from
	// the catalog API after retries were exhausted.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrCatalogProtocol reports a malformed or unexpected catalog response.
	// Never retried.
	ErrCatalogProtocol = errors.New("catalog protocol error")

	// ErrAssetNotFound reports an empty asset manifest for a known identifier.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrNoSuitableAsset reports a manifest with no href matching the
	// configured extension allow-list.
	ErrNoSuitableAsset = errors.New("no suitable asset in manifest")

	// ErrDownloadFailed reports a failed image download after retries.
	ErrDownloadFailed = errors.New("download failed")

	// ErrSinkUnavailable reports that the wallpaper sink rejected or could
	// not perform an apply.
	ErrSinkUnavailable = errors.New("wallpaper sink unavailable")

	// ErrHistoryPersist reports a failure writing the wallpaper history.
	ErrHistoryPersist = errors.New("history persist failed")
)
