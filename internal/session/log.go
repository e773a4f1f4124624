package session

import (
	"strconv"
	"time"
)

// Rating bounds for the fixed 1-10 scale. The key set enforces the
// domain; Record does not validate it.
const (
	MinRating = 1
	MaxRating = 10
)

// Entry is a single recorded rating. Immutable once created.
type Entry struct {
	// Offset is the elapsed session time at the moment of recording.
	Offset time.Duration
	// Rating is the self-rating on the 1-10 scale.
	Rating int
}

// Seconds returns the offset in seconds as a float.
func (e Entry) Seconds() float64 {
	return e.Offset.Seconds()
}

// Log is an append-only, insertion-ordered sequence of entries.
// Offsets are non-decreasing by construction since the timer only
// advances.
type Log struct {
	entries []Entry
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Record appends an entry for the given rating at the timer's current
// elapsed time and returns it. If the timer is not running the rating
// is silently dropped and Record returns nil, leaving the log
// unchanged.
func (l *Log) Record(t *Timer, rating int) *Entry {
	if !t.Running() {
		return nil
	}
	e := Entry{Offset: t.Elapsed(), Rating: rating}
	l.entries = append(l.entries, e)
	return &e
}

// Entries returns a snapshot of all entries in recording order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// CSVHeader is the fixed header row for exported data.
var CSVHeader = []string{"Time (s)", "Rating"}

// CSVRows returns the export table: the header row followed by one
// row per entry, time formatted to two decimal places in seconds and
// rating as integer text.
func (l *Log) CSVRows() [][]string {
	rows := make([][]string, 0, len(l.entries)+1)
	rows = append(rows, CSVHeader)
	for _, e := range l.entries {
		rows = append(rows, []string{
			strconv.FormatFloat(e.Seconds(), 'f', 2, 64),
			strconv.Itoa(e.Rating),
		})
	}
	return rows
}

// Series returns the offsets (seconds) and ratings as parallel slices
// in entry order for charting. Both are empty for an empty log, in
// which case the caller must skip plotting.
func (l *Log) Series() ([]float64, []int) {
	times := make([]float64, len(l.entries))
	ratings := make([]int, len(l.entries))
	for i, e := range l.entries {
		times[i] = e.Seconds()
		ratings[i] = e.Rating
	}
	return times, ratings
}
