package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/suds/internal/config"
)

// testSession returns a session service driven by a manual clock.
func testSession(t *testing.T, cfg config.Config) (*SessionService, *time.Time) {
	t.Helper()
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)
	svc := NewSessionServiceWithClock(cfg, func() time.Time { return now })
	return svc, &now
}

func TestSessionService_ToggleAndElapsed(t *testing.T) {
	svc, now := testSession(t, config.DefaultConfig())

	if svc.Running() {
		t.Fatal("new session should not be running")
	}

	if running := svc.Toggle(); !running {
		t.Error("first Toggle() should start the stopwatch")
	}
	*now = now.Add(2 * time.Second)

	if running := svc.Toggle(); running {
		t.Error("second Toggle() should pause the stopwatch")
	}
	if got := svc.Elapsed(); got != 2*time.Second {
		t.Errorf("Elapsed() = %v, expected 2s", got)
	}
}

func TestSessionService_RecordOnlyWhileRunning(t *testing.T) {
	svc, now := testSession(t, config.DefaultConfig())

	if e := svc.Record(5); e != nil {
		t.Error("Record() before start should return nil")
	}

	svc.Toggle()
	*now = now.Add(time.Second)
	if e := svc.Record(8); e == nil {
		t.Error("Record() while running should return the entry")
	}

	svc.Toggle()
	if e := svc.Record(2); e != nil {
		t.Error("Record() while paused should return nil")
	}

	if svc.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", svc.Count())
	}
}

func TestSessionService_FullSessionExport(t *testing.T) {
	svc, now := testSession(t, config.DefaultConfig())

	svc.Toggle()
	*now = now.Add(2 * time.Second)
	svc.Record(7)
	*now = now.Add(3 * time.Second)
	svc.Record(3)
	svc.Toggle()

	path := filepath.Join(t.TempDir(), "out.csv")
	saved, err := svc.Export(path)
	if err != nil {
		t.Fatalf("Export() returned unexpected error: %v", err)
	}

	data, err := os.ReadFile(saved)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	expected := "Time (s),Rating\n2.00,7\n5.00,3\n"
	if string(data) != expected {
		t.Errorf("export = %q, expected %q", string(data), expected)
	}
}

func TestSessionService_EmptySessionExportsHeaderOnly(t *testing.T) {
	svc, _ := testSession(t, config.DefaultConfig())

	path := filepath.Join(t.TempDir(), "empty")
	saved, err := svc.Export(path)
	if err != nil {
		t.Fatalf("Export() returned unexpected error: %v", err)
	}
	if !strings.HasSuffix(saved, ".csv") {
		t.Errorf("Export() path = %q, expected .csv extension appended", saved)
	}

	data, err := os.ReadFile(saved)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if string(data) != "Time (s),Rating\n" {
		t.Errorf("empty session export = %q, expected header only", string(data))
	}
}

func TestSessionService_Series(t *testing.T) {
	svc, now := testSession(t, config.DefaultConfig())

	svc.Toggle()
	*now = now.Add(time.Second)
	svc.Record(4)

	times, ratings := svc.Series()
	if len(times) != 1 || len(ratings) != 1 {
		t.Fatalf("Series() lengths = %d/%d, expected 1/1", len(times), len(ratings))
	}
	if times[0] != 1.0 || ratings[0] != 4 {
		t.Errorf("Series() = %v/%v, expected [1]/[4]", times, ratings)
	}
}

func TestSessionService_DefaultExportPath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ExportDir = "/data/sessions"
	svc, _ := testSession(t, cfg)

	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	got := svc.DefaultExportPath(day)
	expected := filepath.Join("/data/sessions", "suds-2024-03-05.csv")
	if got != expected {
		t.Errorf("DefaultExportPath() = %q, expected %q", got, expected)
	}
}
