package store

import (
	"math"
	"strings"
	"testing"
	"time"

	"paysheet/internal/timesheet"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleEntry(id string) timesheet.Entry {
	return timesheet.Entry{
		ID:               id,
		Week:             "Week 1",
		Date:             time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		SignIn:           "09:00",
		SignOut:          "17:00",
		NumberOfBreaks:   2,
		HoursWorked:      7.5,
		PaidBreakHours:   0.5,
		UnpaidBreakHours: 0.5,
		SubmittedAt:      time.Date(2026, 1, 15, 17, 5, 12, 345678000, time.UTC),
	}
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Should have run migration v1
	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/paysheet.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: should succeed and not re-migrate
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(path, "paysheet") {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Entries
// ============================================================

func TestInsertAndSelectAll(t *testing.T) {
	s := newTestStore(t)
	want := sampleEntry("a1")

	if err := s.Insert(want); err != nil {
		t.Fatal(err)
	}

	entries, err := s.SelectAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	got := entries[0]
	if got.ID != want.ID || got.Week != want.Week || got.SignIn != want.SignIn || got.SignOut != want.SignOut {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.NumberOfBreaks != want.NumberOfBreaks {
		t.Fatalf("breaks = %d, want %d", got.NumberOfBreaks, want.NumberOfBreaks)
	}
	if !got.Date.Equal(want.Date) {
		t.Fatalf("date = %v, want %v", got.Date, want.Date)
	}
	if !got.SubmittedAt.Equal(want.SubmittedAt) {
		t.Fatalf("submitted_at = %v, want %v", got.SubmittedAt, want.SubmittedAt)
	}
}

func TestHourFieldsRoundTripPrecision(t *testing.T) {
	s := newTestStore(t)
	e := sampleEntry("prec")
	e.HoursWorked = 7.483333333333333
	e.UnpaidBreakHours = 1.5

	if err := s.Insert(e); err != nil {
		t.Fatal(err)
	}

	entries, _ := s.SelectAll()
	got := entries[0]
	for _, pair := range [][2]float64{
		{got.HoursWorked, e.HoursWorked},
		{got.PaidBreakHours, e.PaidBreakHours},
		{got.UnpaidBreakHours, e.UnpaidBreakHours},
	} {
		if math.Abs(pair[0]-pair[1]) > 1e-9 {
			t.Fatalf("hour field %v drifted from %v", pair[0], pair[1])
		}
	}
}

func TestInsertDuplicateID(t *testing.T) {
	s := newTestStore(t)
	if err := s.Insert(sampleEntry("dup")); err != nil {
		t.Fatal(err)
	}
	if err := s.Insert(sampleEntry("dup")); err == nil {
		t.Fatal("expected error for duplicate id")
	}
}

func TestReplace(t *testing.T) {
	s := newTestStore(t)
	e := sampleEntry("r1")
	s.Insert(e)

	e.Week = "Week 2"
	e.SignOut = "18:00"
	e.HoursWorked = 8.5
	if err := s.Replace("r1", e); err != nil {
		t.Fatal(err)
	}

	entries, _ := s.SelectAll()
	if entries[0].Week != "Week 2" || entries[0].SignOut != "18:00" {
		t.Fatalf("replace did not stick: %+v", entries[0])
	}
	if entries[0].HoursWorked != 8.5 {
		t.Fatalf("hours = %v, want 8.5", entries[0].HoursWorked)
	}
}

func TestReplaceMissingRow(t *testing.T) {
	s := newTestStore(t)
	if err := s.Replace("ghost", sampleEntry("ghost")); err == nil {
		t.Fatal("expected error replacing missing row")
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	s.Insert(sampleEntry("d1"))

	if err := s.Remove("d1"); err != nil {
		t.Fatal(err)
	}
	entries, _ := s.SelectAll()
	if len(entries) != 0 {
		t.Fatalf("expected 0 entries after remove, got %d", len(entries))
	}

	if err := s.Remove("d1"); err == nil {
		t.Fatal("expected error removing missing row")
	}
}

func TestSelectAllOrder(t *testing.T) {
	s := newTestStore(t)
	for i, id := range []string{"first", "second", "third"} {
		e := sampleEntry(id)
		e.SubmittedAt = e.SubmittedAt.Add(time.Duration(i) * time.Minute)
		if err := s.Insert(e); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := s.SelectAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].ID != "first" || entries[2].ID != "third" {
		t.Fatalf("entries out of submission order: %s, %s, %s", entries[0].ID, entries[1].ID, entries[2].ID)
	}
}

func TestSelectAllEmpty(t *testing.T) {
	s := newTestStore(t)
	entries, err := s.SelectAll()
	if err != nil {
		t.Fatal(err)
	}
	if entries != nil {
		t.Fatalf("expected nil slice, got %d items", len(entries))
	}
}
