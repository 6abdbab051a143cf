package sink

import (
	"context"
	"fmt"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/ports"
)

// GnomeSink sets the wallpaper on GNOME and Cinnamon via gsettings.
type GnomeSink struct{}

func (s *GnomeSink) Name() string { return "gnome" }

func (s *GnomeSink) Available() bool { return toolAvailable("gsettings") }

func (s *GnomeSink) Apply(ctx context.Context, path string) error {
	uri := "file://" + path
	keys := []string{"picture-uri", "picture-uri-dark"}
	for _, key := range keys {
		if err := runTool(ctx, "gsettings", "set", "org.gnome.desktop.background", key, uri); err != nil {
			// Older GNOME and Cinnamon lack the dark variant.
			if key == "picture-uri-dark" {
				continue
			}
			return fmt.Errorf("gnome apply: %v: %w", err, domain.ErrSinkUnavailable)
		}
	}
	return nil
}

var _ ports.WallpaperSink = (*GnomeSink)(nil)
