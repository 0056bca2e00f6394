// Package timesheet owns the timesheet entry lifecycle: validation,
// derived-field computation, the authoritative entry collection and its
// write-through persistence.
package timesheet

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"paysheet/internal/timecalc"
)

var (
	clockPattern  = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	breaksPattern = regexp.MustCompile(`^[0-9]+$`)
)

// Backend is the persistence collaborator. The Book treats it as a
// write-through mirror: the in-memory index stays the source of truth for
// List and Summarize, and a backend failure leaves the index untouched.
type Backend interface {
	Insert(e Entry) error
	Replace(id string, e Entry) error
	Remove(id string) error
	SelectAll() ([]Entry, error)
}

// Book is the entry store for a single user. It is not safe for concurrent
// use; one logical actor issues operations sequentially.
type Book struct {
	calc    timecalc.Calculator
	backend Backend
	log     zerolog.Logger

	entries map[string]*Entry
	order   []string // ids in insertion order, for stable sort tie-breaks
}

// Open loads all persisted entries from the backend into a new Book.
func Open(backend Backend, calc timecalc.Calculator, log zerolog.Logger) (*Book, error) {
	existing, err := backend.SelectAll()
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	b := &Book{
		calc:    calc,
		backend: backend,
		log:     log,
		entries: make(map[string]*Entry, len(existing)),
	}
	for i := range existing {
		e := existing[i]
		b.entries[e.ID] = &e
		b.order = append(b.order, e.ID)
	}
	return b, nil
}

// Rate returns the hourly rate the Book computes pay with.
func (b *Book) Rate() float64 { return b.calc.Rate }

// Len returns the number of entries.
func (b *Book) Len() int { return len(b.order) }

// Create validates raw, computes the derived fields, assigns a fresh id and
// submission timestamp, persists the entry and adds it to the collection.
func (b *Book) Create(raw RawSession) (*Entry, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}

	e := b.build(raw)
	e.ID = uuid.NewString()
	e.SubmittedAt = time.Now().UTC()

	if err := b.backend.Insert(e); err != nil {
		return nil, &PersistenceError{Op: "insert", Err: err}
	}

	b.entries[e.ID] = &e
	b.order = append(b.order, e.ID)
	b.log.Info().Str("id", e.ID).Str("week", e.Week).Float64("hours", e.HoursWorked).Msg("entry created")
	return copyOf(&e), nil
}

// Update replaces every field of the entry except its id and submission
// timestamp, recomputing the derived fields from the new raw values.
// It is a full replacement; there are no partial patches.
func (b *Book) Update(id string, raw RawSession) (*Entry, error) {
	old, ok := b.entries[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	e := b.build(raw)
	e.ID = old.ID
	e.SubmittedAt = old.SubmittedAt

	if err := b.backend.Replace(id, e); err != nil {
		return nil, &PersistenceError{Op: "replace", Err: err}
	}

	*old = e
	b.log.Info().Str("id", id).Float64("hours", e.HoursWorked).Msg("entry updated")
	return copyOf(old), nil
}

// Delete removes the entry. Deleting an id that is already gone is a
// NotFoundError, not a silent no-op.
func (b *Book) Delete(id string) error {
	if _, ok := b.entries[id]; !ok {
		return &NotFoundError{ID: id}
	}

	if err := b.backend.Remove(id); err != nil {
		return &PersistenceError{Op: "remove", Err: err}
	}

	delete(b.entries, id)
	for i, oid := range b.order {
		if oid == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	b.log.Info().Str("id", id).Msg("entry deleted")
	return nil
}

// Get returns a copy of the entry, or a NotFoundError.
func (b *Book) Get(id string) (*Entry, error) {
	e, ok := b.entries[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return copyOf(e), nil
}

// List returns copies of all entries sorted ascending by the requested key.
// Entries that compare equal keep their insertion order.
func (b *Book) List(by OrderBy) []Entry {
	out := make([]Entry, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.entries[id])
	}

	switch by {
	case OrderByWeek:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	}
	return out
}

// Summarize aggregates worked hours across entries. Pay is re-derived from
// the current rate and the hour total, never summed from per-entry amounts,
// so a rate change only has to touch the rate.
func (b *Book) Summarize(entries []Entry) Summary {
	var hours float64
	for _, e := range entries {
		hours += e.HoursWorked
	}
	return Summary{TotalHours: hours, TotalPay: hours * b.calc.Rate}
}

// build computes the derived fields for a validated RawSession.
func (b *Book) build(raw RawSession) Entry {
	bd := b.calc.Compute(raw.SignIn, raw.SignOut, raw.NumberOfBreaks)
	breaks, _ := strconv.Atoi(strings.TrimSpace(raw.NumberOfBreaks))
	return Entry{
		Week:             strings.TrimSpace(raw.Week),
		Date:             raw.Date,
		SignIn:           strings.TrimSpace(raw.SignIn),
		SignOut:          strings.TrimSpace(raw.SignOut),
		NumberOfBreaks:   breaks,
		HoursWorked:      bd.HoursWorked,
		PaidBreakHours:   bd.PaidBreakHours,
		UnpaidBreakHours: bd.UnpaidBreakHours,
	}
}

func validate(raw RawSession) error {
	if strings.TrimSpace(raw.Week) == "" {
		return &ValidationError{Field: "week", Message: "week is required"}
	}
	if raw.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	if !clockPattern.MatchString(strings.TrimSpace(raw.SignIn)) {
		return &ValidationError{Field: "sign_in", Message: "use HH:MM format"}
	}
	if !clockPattern.MatchString(strings.TrimSpace(raw.SignOut)) {
		return &ValidationError{Field: "sign_out", Message: "use HH:MM format"}
	}
	if !breaksPattern.MatchString(strings.TrimSpace(raw.NumberOfBreaks)) {
		return &ValidationError{Field: "number_of_breaks", Message: "whole numbers only"}
	}
	return nil
}

func copyOf(e *Entry) *Entry {
	c := *e
	return &c
}
