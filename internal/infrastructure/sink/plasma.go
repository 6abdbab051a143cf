package sink

import (
	"context"
	"fmt"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/ports"
)

// PlasmaSink sets the wallpaper on KDE Plasma through the plasmashell
// scripting interface on the session bus.
type PlasmaSink struct{}

func (s *PlasmaSink) Name() string { return "plasma" }

func (s *PlasmaSink) Available() bool { return toolAvailable("qdbus") }

// Apply runs the same desktop script for every invocation with the same
// path, so re-applying is safe.
func (s *PlasmaSink) Apply(ctx context.Context, path string) error {
	script := fmt.Sprintf(`
var allDesktops = desktops();
for (var i = 0; i < allDesktops.length; i++) {
    var desktop = allDesktops[i];
    desktop.wallpaperPlugin = "org.kde.image";
    desktop.currentConfigGroup = ["Wallpaper", "org.kde.image", "General"];
    desktop.writeConfig("Image", "file://%s");
    desktop.writeConfig("FillMode", "6");
}`, path)
	err := runTool(ctx, "qdbus",
		"org.kde.plasmashell", "/PlasmaShell",
		"org.kde.PlasmaShell.evaluateScript", script)
	if err != nil {
		return fmt.Errorf("plasma apply: %v: %w", err, domain.ErrSinkUnavailable)
	}
	return nil
}

var _ ports.WallpaperSink = (*PlasmaSink)(nil)
