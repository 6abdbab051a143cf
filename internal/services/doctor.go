package services

import (
	"context"
	"fmt"
	"os"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/pkg/filesystem"
	"github.com/doeshing/skypaper/internal/ports"
)

// HealthStatus indicates doctor check outcomes.
type HealthStatus string

const (
	HealthOK    HealthStatus = "ok"
	HealthWarn  HealthStatus = "warn"
	HealthError HealthStatus = "error"
)

// HealthCheck captures a single diagnostic result.
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Details string
}

// HealthReport aggregates checks.
type HealthReport struct {
	Checks []HealthCheck
}

// DoctorService runs environment diagnostics.
type DoctorService struct {
	ConfigProvider ports.ConfigProvider
	Catalog        ports.CatalogClient
	Sink           ports.WallpaperSink
	History        ports.HistoryStore
}

// Run executes checks and returns a report.
func (s *DoctorService) Run(ctx context.Context) (HealthReport, error) {
	var checks []HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))

	if cfg.ResolveAPIKey() == "" {
		checks = append(checks, warn("API key", "no key configured; anonymous catalog rate limits apply"))
	} else {
		checks = append(checks, ok("API key", "configured"))
	}

	if s.Catalog != nil {
		if _, err := s.Catalog.Search(ctx, domain.SearchQuery{Query: "earth", MediaType: "image"}); err != nil {
			checks = append(checks, fail("Catalog", err.Error()))
		} else {
			checks = append(checks, ok("Catalog", "reachable"))
		}
	}

	if s.Sink != nil {
		if s.Sink.Available() {
			checks = append(checks, ok("Wallpaper sink", s.Sink.Name()))
		} else {
			checks = append(checks, fail("Wallpaper sink", fmt.Sprintf("%s tooling not found", s.Sink.Name())))
		}
	} else {
		checks = append(checks, fail("Wallpaper sink", "not configured"))
	}

	checks = append(checks, dirCheck("Wallpaper dir", cfg.Paths.WallpaperDir))
	checks = append(checks, dirCheck("Scratch dir", cfg.Paths.ScratchDir))

	if s.History != nil {
		if _, err := s.History.Load(); err != nil {
			checks = append(checks, fail("History store", err.Error()))
		} else {
			checks = append(checks, ok("History store", s.History.Path()))
		}
	}

	return HealthReport{Checks: checks}, nil
}

func dirCheck(name, path string) HealthCheck {
	if path == "" {
		return warn(name, "not configured, defaults apply")
	}
	expanded := filesystem.ExpandPath(path)
	if err := os.MkdirAll(expanded, domain.DirectoryPermissions); err != nil {
		return fail(name, fmt.Sprintf("not writable: %v", err))
	}
	return ok(name, expanded)
}

func ok(name, details string) HealthCheck {
	return HealthCheck{Name: name, Status: HealthOK, Details: details}
}

func warn(name, details string) HealthCheck {
	return HealthCheck{Name: name, Status: HealthWarn, Details: details}
}

func fail(name, details string) HealthCheck {
	return HealthCheck{Name: name, Status: HealthError, Details: details}
}
