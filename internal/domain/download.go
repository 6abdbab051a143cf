package domain

import "time"

// DownloadedFile describes an image placed in the wallpaper directory. Owned
// by the downloader until handed to the orchestrator.
type DownloadedFile struct {
	Path         string
	Size         int64
	SourceURL    string
	DownloadedAt time.Time
}
