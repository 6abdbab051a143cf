package domain

import "context"

// CycleStage names a step in the linear fetch->resolve->download->apply->record
// pipeline. A cycle result carries the last stage reached, which on failure is
// the stage that broke.
type CycleStage string

const (
	StageIdle        CycleStage = "idle"
	StageSearching   CycleStage = "searching"
	StageResolving   CycleStage = "resolving"
	StageDownloading CycleStage = "downloading"
	StageApplying    CycleStage = "applying"
	StageRecording   CycleStage = "recording"
)

// CycleRequest captures one invocation of the pipeline, originating from the
// CLI or the watch loop. Query overrides the configured search keyword when
// non-empty.
type CycleRequest struct {
	Context  context.Context
	Query    string
	Keywords []string
}

// CycleResult is the canonical outcome propagated back to the CLI.
type CycleResult struct {
	ID      string
	Stage   CycleStage
	Item    CatalogItem
	Asset   string
	File    *DownloadedFile
	NoMatch bool
}
