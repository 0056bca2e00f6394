package cli

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"paysheet/internal/config"
	"paysheet/internal/store"
	"paysheet/internal/timecalc"
	"paysheet/internal/timesheet"
)

func newTestEnv(t *testing.T) *env {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	book, err := timesheet.Open(s, timecalc.New(0), zerolog.Nop())
	if err != nil {
		t.Fatalf("open book: %v", err)
	}

	return &env{
		cfg: config.Config{
			HourlyRate: timecalc.DefaultRate,
			Currency:   "$",
			ExportDir:  t.TempDir(),
		},
		book: book,
		log:  zerolog.Nop(),
	}
}

func runCommand(t *testing.T, e *env, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(e)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestAddCommandRecordsEntry(t *testing.T) {
	e := newTestEnv(t)

	out, err := runCommand(t, e,
		"add", "-w", "Week 1", "-d", "2026-01-12", "-i", "09:00", "-o", "17:00", "-b", "1")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.Contains(out, "Recorded 8.00 hours for Week 1 ($140.00)") {
		t.Fatalf("unexpected output: %q", out)
	}
	if e.book.Len() != 1 {
		t.Fatalf("book len = %d, want 1", e.book.Len())
	}
}

func TestAddCommandDefaultsDateToToday(t *testing.T) {
	e := newTestEnv(t)

	_, err := runCommand(t, e, "add", "-w", "Week 1", "-i", "09:00", "-o", "17:00")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	entries := e.book.List(timesheet.OrderByDate)
	if entries[0].Date.IsZero() {
		t.Fatal("date should default to today, got zero")
	}
}

func TestAddCommandRejectsBadClock(t *testing.T) {
	e := newTestEnv(t)

	_, err := runCommand(t, e,
		"add", "-w", "Week 1", "-d", "2026-01-12", "-i", "25:00", "-o", "17:00")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !timesheet.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if e.book.Len() != 0 {
		t.Fatal("failed add should not store an entry")
	}
}

func TestListCommandEmpty(t *testing.T) {
	e := newTestEnv(t)

	out, err := runCommand(t, e, "list")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "No entries recorded yet.") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestListCommandShowsEntriesAndTotals(t *testing.T) {
	e := newTestEnv(t)
	mustAdd(t, e, "Week 1", "2026-01-12", "09:00", "17:00", "1")
	mustAdd(t, e, "Week 2", "2026-01-19", "09:00", "13:00", "0")

	out, err := runCommand(t, e, "list")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.Contains(out, "Week 1") || !strings.Contains(out, "Week 2") {
		t.Fatalf("output missing weeks: %q", out)
	}
	// 8.00 + 4.00 hours at 17.50
	if !strings.Contains(out, "Total: 12.00 hours, $210.00") {
		t.Fatalf("output missing totals: %q", out)
	}
}

func TestListCommandOrderByWeek(t *testing.T) {
	e := newTestEnv(t)
	mustAdd(t, e, "Week B", "2026-01-12", "09:00", "17:00", "1")
	mustAdd(t, e, "Week A", "2026-01-19", "09:00", "17:00", "1")

	out, err := runCommand(t, e, "list", "--by", "week")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if strings.Index(out, "Week A") > strings.Index(out, "Week B") {
		t.Fatalf("entries not ordered by week: %q", out)
	}
}

func TestListCommandRejectsUnknownOrder(t *testing.T) {
	e := newTestEnv(t)

	_, err := runCommand(t, e, "list", "--by", "pay")
	if err == nil {
		t.Fatal("expected error for unknown sort order")
	}
}

func TestRemoveCommand(t *testing.T) {
	e := newTestEnv(t)
	mustAdd(t, e, "Week 1", "2026-01-12", "09:00", "17:00", "1")
	id := e.book.List(timesheet.OrderByDate)[0].ID

	out, err := runCommand(t, e, "rm", id)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "Deleted entry "+id) {
		t.Fatalf("unexpected output: %q", out)
	}
	if e.book.Len() != 0 {
		t.Fatal("entry should be gone")
	}
}

func TestRemoveCommandMissingID(t *testing.T) {
	e := newTestEnv(t)

	_, err := runCommand(t, e, "rm", "no-such-id")
	if err == nil {
		t.Fatal("expected not-found error")
	}
	if !timesheet.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSummaryCommand(t *testing.T) {
	e := newTestEnv(t)
	mustAdd(t, e, "Week 1", "2026-01-12", "09:00", "17:00", "1")

	out, err := runCommand(t, e, "summary")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, want := range []string{"Entries:     1", "Total hours: 8.00", "Total pay:   $140.00", "Hourly rate: $17.50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q: %q", want, out)
		}
	}
}

func TestExportCommandCSV(t *testing.T) {
	e := newTestEnv(t)
	mustAdd(t, e, "Week 1", "2026-01-12", "09:00", "17:00", "1")

	path := filepath.Join(t.TempDir(), "out.csv")
	out, err := runCommand(t, e, "export", "--format", "csv", "--out", path)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "Exported 1 entries to "+path) {
		t.Fatalf("unexpected output: %q", out)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	// header + 1 entry + totals + pay
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
}

func TestExportCommandDefaultPath(t *testing.T) {
	e := newTestEnv(t)
	mustAdd(t, e, "Week 1", "2026-01-12", "09:00", "17:00", "1")

	out, err := runCommand(t, e, "export", "--format", "json")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, e.cfg.ExportDir) {
		t.Fatalf("default path should land in the export dir: %q", out)
	}
}

func TestExportCommandEmptyBook(t *testing.T) {
	e := newTestEnv(t)

	_, err := runCommand(t, e, "export", "--format", "csv")
	if err == nil {
		t.Fatal("expected error for empty export")
	}
}

func TestExportCommandUnknownFormat(t *testing.T) {
	e := newTestEnv(t)
	mustAdd(t, e, "Week 1", "2026-01-12", "09:00", "17:00", "1")

	_, err := runCommand(t, e, "export", "--format", "pdf")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestResolveDate(t *testing.T) {
	got, err := resolveDate("2026-03-01")
	if err != nil {
		t.Fatalf("resolveDate: %v", err)
	}
	if got.Format(dateLayout) != "2026-03-01" {
		t.Fatalf("resolveDate = %v", got)
	}

	if _, err := resolveDate("01/03/2026"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}

func mustAdd(t *testing.T, e *env, week, date, in, out, breaks string) {
	t.Helper()
	_, err := runCommand(t, e, "add", "-w", week, "-d", date, "-i", in, "-o", out, "-b", breaks)
	if err != nil {
		t.Fatalf("add %s: %v", week, err)
	}
}
