package service

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/suds/internal/config"
)

func newTestConfigService(t *testing.T) *ConfigService {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFile)
	return NewConfigService(path, config.DefaultConfig())
}

func TestConfigService_GetAndPath(t *testing.T) {
	svc := newTestConfigService(t)

	if svc.Get().RefreshIntervalMS != config.DefaultRefreshIntervalMS {
		t.Errorf("Get() refresh interval = %d, expected default", svc.Get().RefreshIntervalMS)
	}
	if !strings.HasSuffix(svc.GetPath(), config.ConfigFile) {
		t.Errorf("GetPath() = %q, expected to end with %s", svc.GetPath(), config.ConfigFile)
	}
	if svc.Exists() {
		t.Error("Exists() should be false before any write")
	}
}

func TestConfigService_UpdateRoundTrips(t *testing.T) {
	svc := newTestConfigService(t)

	cfg := svc.Get()
	cfg.Theme = "nord"
	cfg.RefreshIntervalMS = 200
	if err := svc.Update(cfg); err != nil {
		t.Fatalf("Update() returned unexpected error: %v", err)
	}

	if !svc.Exists() {
		t.Error("Exists() should be true after Update()")
	}

	if err := svc.Reload(); err != nil {
		t.Fatalf("Reload() returned unexpected error: %v", err)
	}
	got := svc.Get()
	if got.Theme != "nord" {
		t.Errorf("reloaded theme = %q, expected nord", got.Theme)
	}
	if got.RefreshIntervalMS != 200 {
		t.Errorf("reloaded refresh interval = %d, expected 200", got.RefreshIntervalMS)
	}
}

func TestConfigService_UpdateNormalizes(t *testing.T) {
	svc := newTestConfigService(t)

	cfg := svc.Get()
	cfg.RefreshIntervalMS = 1 // below minimum, clamped
	if err := svc.Update(cfg); err != nil {
		t.Fatalf("Update() returned unexpected error: %v", err)
	}
	if svc.Get().RefreshIntervalMS != config.MinRefreshIntervalMS {
		t.Errorf("refresh interval = %d, expected clamped to %d",
			svc.Get().RefreshIntervalMS, config.MinRefreshIntervalMS)
	}
}

func TestConfigService_Init(t *testing.T) {
	svc := newTestConfigService(t)

	if err := svc.Init(); err != nil {
		t.Fatalf("Init() returned unexpected error: %v", err)
	}
	if !svc.Exists() {
		t.Error("Exists() should be true after Init()")
	}

	// Second Init must refuse to overwrite
	if err := svc.Init(); err == nil {
		t.Error("Init() on existing file should return an error")
	}
}

func TestNewServicesWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFile)
	services := NewServicesWithConfig(path, config.DefaultConfig())

	if services.Session == nil {
		t.Error("expected Session service to be set")
	}
	if services.Config == nil {
		t.Error("expected Config service to be set")
	}
}
