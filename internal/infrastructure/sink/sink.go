// Package sink holds the desktop integrations that apply a downloaded image
// as the wallpaper. Each integration shells out to the desktop environment's
// own tooling; the pipeline only sees the ports.WallpaperSink contract.
package sink

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/doeshing/skypaper/internal/ports"
)

// FromConfig resolves the configured sink name. "auto" (or empty) detects by
// probing for the desktop tools in PATH; "none" returns the no-op sink.
func FromConfig(name string, log ports.Logger) (ports.WallpaperSink, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Detect(log)
	case "plasma":
		return &PlasmaSink{}, nil
	case "gnome":
		return &GnomeSink{}, nil
	case "macos":
		return &DarwinSink{}, nil
	case "none":
		return &NoopSink{}, nil
	default:
		return nil, fmt.Errorf("unknown sink %q (want auto, plasma, gnome, macos or none)", name)
	}
}

// Detect returns the first available desktop sink.
func Detect(log ports.Logger) (ports.WallpaperSink, error) {
	candidates := []ports.WallpaperSink{&PlasmaSink{}, &GnomeSink{}, &DarwinSink{}}
	for _, candidate := range candidates {
		if candidate.Available() {
			log.Debug("detected wallpaper sink", map[string]interface{}{"sink": candidate.Name()})
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("no wallpaper sink detected: none of qdbus, gsettings, osascript found in PATH")
}

func toolAvailable(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}

func runTool(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %v: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
