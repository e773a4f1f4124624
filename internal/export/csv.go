// Package export writes a session's rating log to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xolan/suds/internal/session"
)

// Extension is the default file extension for exported data.
const Extension = ".csv"

// Write encodes the log as CSV: the fixed header row followed by one
// row per entry with elapsed seconds at two decimal places and the
// integer rating. An empty log produces a header-only document.
func Write(w io.Writer, log *session.Log) error {
	writer := csv.NewWriter(w)
	for _, row := range log.CSVRows() {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

// Save writes the log to the given path, appending the .csv extension
// when the name has none. The file is created with 0644 permissions,
// overwriting any existing file. I/O errors are returned to the
// caller for display; nothing is retried.
func Save(path string, log *session.Log) (string, error) {
	if filepath.Ext(path) == "" {
		path += Extension
	}

	file, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(file, log); err != nil {
		_ = file.Close()
		return path, err
	}

	if err := file.Close(); err != nil {
		return path, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}

// DefaultFilename returns the prefill for the export prompt:
// <dir>/suds-YYYY-MM-DD.csv for the given day.
func DefaultFilename(dir string, day time.Time) string {
	name := "suds-" + day.Format("2006-01-02") + Extension
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
