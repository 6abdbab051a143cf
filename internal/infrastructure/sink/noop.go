package sink

import (
	"context"

	"github.com/doeshing/skypaper/internal/ports"
)

// NoopSink accepts every apply without touching the desktop. Useful for
// headless testing and for running the pipeline purely as a downloader.
type NoopSink struct{}

func (s *NoopSink) Name() string { return "none" }

func (s *NoopSink) Available() bool { return true }

func (s *NoopSink) Apply(context.Context, string) error { return nil }

var _ ports.WallpaperSink = (*NoopSink)(nil)
