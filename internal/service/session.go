package service

import (
	"time"

	"github.com/xolan/suds/internal/config"
	"github.com/xolan/suds/internal/export"
	"github.com/xolan/suds/internal/session"
)

// SessionService owns the timer and rating log for the lifetime of
// one exposure session. All calls come from the UI goroutine; the
// session is discarded when the process exits.
type SessionService struct {
	timer  *session.Timer
	log    *session.Log
	config config.Config
}

// NewSessionService creates a service with a fresh stopped timer and
// an empty log.
func NewSessionService(cfg config.Config) *SessionService {
	return &SessionService{
		timer:  session.NewTimer(),
		log:    session.NewLog(),
		config: cfg,
	}
}

// NewSessionServiceWithClock creates a service whose timer reads time
// from the given clock function (useful for testing).
func NewSessionServiceWithClock(cfg config.Config, now func() time.Time) *SessionService {
	return &SessionService{
		timer:  session.NewTimerWithClock(now),
		log:    session.NewLog(),
		config: cfg,
	}
}

// Toggle starts or pauses the stopwatch and returns the new running
// state. A false return means the session just stopped and results
// should be presented.
func (s *SessionService) Toggle() bool {
	return s.timer.Toggle()
}

// Running reports whether the stopwatch is advancing.
func (s *SessionService) Running() bool {
	return s.timer.Running()
}

// Elapsed returns the current elapsed session time.
func (s *SessionService) Elapsed() time.Duration {
	return s.timer.Elapsed()
}

// Record logs a rating at the current elapsed time and returns the
// new entry, or nil if the stopwatch is paused (the rating is
// silently dropped).
func (s *SessionService) Record(rating int) *session.Entry {
	return s.log.Record(s.timer, rating)
}

// Entries returns a snapshot of all recorded entries in order.
func (s *SessionService) Entries() []session.Entry {
	return s.log.Entries()
}

// Count returns the number of recorded entries.
func (s *SessionService) Count() int {
	return s.log.Len()
}

// Series returns the time and rating slices for charting.
func (s *SessionService) Series() ([]float64, []int) {
	return s.log.Series()
}

// Export writes the session data as CSV to the given path, appending
// the .csv extension when missing. Returns the path actually written.
func (s *SessionService) Export(path string) (string, error) {
	return export.Save(path, s.log)
}

// DefaultExportPath returns the filename prefilled in the export
// prompt, placed in the configured export directory.
func (s *SessionService) DefaultExportPath(day time.Time) string {
	return export.DefaultFilename(s.config.ExportDir, day)
}
