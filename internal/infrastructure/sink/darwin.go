package sink

import (
	"context"
	"fmt"
	"strconv"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/ports"
)

// DarwinSink sets the wallpaper on macOS by telling System Events through
// osascript.
type DarwinSink struct{}

func (s *DarwinSink) Name() string { return "macos" }

func (s *DarwinSink) Available() bool { return toolAvailable("osascript") }

func (s *DarwinSink) Apply(ctx context.Context, path string) error {
	script := `tell application "System Events" to tell every desktop to set picture to ` + strconv.Quote(path)
	if err := runTool(ctx, "osascript", "-e", script); err != nil {
		return fmt.Errorf("macos apply: %v: %w", err, domain.ErrSinkUnavailable)
	}
	return nil
}

var _ ports.WallpaperSink = (*DarwinSink)(nil)
