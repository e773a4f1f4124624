package session

import (
	"strconv"
	"testing"
	"time"
)

func TestLog_RecordWhileRunning(t *testing.T) {
	timer, clock := newTestTimer()
	log := NewLog()

	timer.Start()
	clock.Advance(2 * time.Second)

	e := log.Record(timer, 7)
	if e == nil {
		t.Fatal("Record() while running returned nil")
	}
	if e.Offset != 2*time.Second {
		t.Errorf("Offset = %v, expected 2s", e.Offset)
	}
	if e.Rating != 7 {
		t.Errorf("Rating = %d, expected 7", e.Rating)
	}
	if log.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", log.Len())
	}
}

func TestLog_RecordWhileStoppedIsDropped(t *testing.T) {
	timer, clock := newTestTimer()
	log := NewLog()

	// Never started
	if e := log.Record(timer, 5); e != nil {
		t.Errorf("Record() before start returned %+v, expected nil", e)
	}

	// Paused mid-session
	timer.Start()
	clock.Advance(time.Second)
	log.Record(timer, 4)
	timer.Stop()

	if e := log.Record(timer, 9); e != nil {
		t.Errorf("Record() while paused returned %+v, expected nil", e)
	}
	if log.Len() != 1 {
		t.Errorf("Len() = %d, expected 1 (paused rating dropped)", log.Len())
	}
}

func TestLog_EntriesSnapshot(t *testing.T) {
	timer, clock := newTestTimer()
	log := NewLog()

	timer.Start()
	for i, r := range []int{3, 7, 10} {
		clock.Advance(time.Duration(i+1) * time.Second)
		log.Record(timer, r)
	}

	entries := log.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries() length = %d, expected 3", len(entries))
	}

	// Mutating the snapshot must not affect the log
	entries[0].Rating = 1
	if log.Entries()[0].Rating != 3 {
		t.Error("mutating the Entries() snapshot changed the log")
	}
}

func TestLog_OffsetsNonDecreasingAcrossResume(t *testing.T) {
	timer, clock := newTestTimer()
	log := NewLog()

	timer.Start()
	clock.Advance(time.Second)
	log.Record(timer, 4)
	timer.Stop()

	clock.Advance(time.Hour) // long pause, no time accrues

	timer.Start()
	clock.Advance(time.Second)
	log.Record(timer, 9)

	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Offset != time.Second {
		t.Errorf("first offset = %v, expected 1s", entries[0].Offset)
	}
	if entries[1].Offset != 2*time.Second {
		t.Errorf("second offset = %v, expected 2s (no reset on resume)", entries[1].Offset)
	}
	if entries[1].Offset <= entries[0].Offset {
		t.Error("offsets must be strictly increasing across a pause")
	}
}

func TestLog_CSVRows(t *testing.T) {
	timer, clock := newTestTimer()
	log := NewLog()

	timer.Start()
	clock.Advance(2 * time.Second)
	log.Record(timer, 7)
	clock.Advance(3 * time.Second)
	log.Record(timer, 3)
	timer.Stop()

	rows := log.CSVRows()
	if len(rows) != 3 {
		t.Fatalf("CSVRows() length = %d, expected 3 (header + 2)", len(rows))
	}

	header := rows[0]
	if header[0] != "Time (s)" || header[1] != "Rating" {
		t.Errorf("header = %v, expected [Time (s) Rating]", header)
	}

	expected := [][]string{
		{"2.00", "7"},
		{"5.00", "3"},
	}
	for i, want := range expected {
		got := rows[i+1]
		if got[0] != want[0] || got[1] != want[1] {
			t.Errorf("row %d = %v, expected %v", i+1, got, want)
		}
	}
}

func TestLog_CSVRows_RoundTrip(t *testing.T) {
	timer, clock := newTestTimer()
	log := NewLog()

	timer.Start()
	offsets := []time.Duration{
		1234 * time.Millisecond,
		5678 * time.Millisecond,
		90 * time.Second,
		3599*time.Second + 990*time.Millisecond,
	}
	var prev time.Duration
	for i, off := range offsets {
		clock.Advance(off - prev)
		prev = off
		log.Record(timer, (i%MaxRating)+1)
	}

	rows := log.CSVRows()[1:]
	entries := log.Entries()
	if len(rows) != len(entries) {
		t.Fatalf("got %d data rows for %d entries", len(rows), len(entries))
	}

	for i, row := range rows {
		parsed, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			t.Fatalf("row %d time %q did not parse: %v", i, row[0], err)
		}
		diff := parsed - entries[i].Seconds()
		if diff < 0 {
			diff = -diff
		}
		if diff >= 0.005 {
			t.Errorf("row %d time %q differs from %v by %f", i, row[0], entries[i].Offset, diff)
		}
	}
}

func TestLog_CSVRows_Empty(t *testing.T) {
	log := NewLog()

	rows := log.CSVRows()
	if len(rows) != 1 {
		t.Fatalf("empty log CSVRows() length = %d, expected header only", len(rows))
	}
}

func TestLog_Series(t *testing.T) {
	timer, clock := newTestTimer()
	log := NewLog()

	timer.Start()
	clock.Advance(2 * time.Second)
	log.Record(timer, 7)
	clock.Advance(3 * time.Second)
	log.Record(timer, 3)

	times, ratings := log.Series()
	if len(times) != 2 || len(ratings) != 2 {
		t.Fatalf("Series() lengths = %d/%d, expected 2/2", len(times), len(ratings))
	}
	if times[0] != 2.0 || times[1] != 5.0 {
		t.Errorf("times = %v, expected [2 5]", times)
	}
	if ratings[0] != 7 || ratings[1] != 3 {
		t.Errorf("ratings = %v, expected [7 3]", ratings)
	}
}

func TestLog_Series_Empty(t *testing.T) {
	times, ratings := NewLog().Series()
	if len(times) != 0 || len(ratings) != 0 {
		t.Errorf("empty log Series() = %v/%v, expected empty slices", times, ratings)
	}
}
