// Package timecalc converts raw sign-in/sign-out times and a break count
// into a worked-hours and pay breakdown.
package timecalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultRate is the flat hourly pay rate in currency units.
const DefaultRate = 17.50

const minutesPerDay = 24 * 60

// Breakdown is the result of a single session computation. All hour values
// are fractional hours; rounding happens only at presentation time.
type Breakdown struct {
	HoursWorked      float64
	PaidBreakHours   float64
	UnpaidBreakHours float64
	Pay              float64
}

// Calculator derives a Breakdown from raw session fields. It holds no state
// beyond the hourly rate, so computations are pure and repeatable.
type Calculator struct {
	Rate float64
}

// New returns a Calculator at the given hourly rate. A non-positive rate
// falls back to DefaultRate.
func New(rate float64) Calculator {
	if rate <= 0 {
		rate = DefaultRate
	}
	return Calculator{Rate: rate}
}

// Compute maps a sign-in time, sign-out time and break count to a Breakdown.
//
// Both times are wall-clock "HH:MM" strings. A sign-out earlier than the
// sign-in is interpreted as ending on the following day (one rollover, never
// more); an equal pair is a zero-length session, not a full day.
//
// Break policy: the first break is 30 minutes and paid, every additional
// break is 30 minutes and unpaid. Only unpaid break time is deducted from
// worked hours. A break count that fails to parse, or parses to zero, is
// treated as a single break for the policy step; every session includes at
// least the one paid break.
//
// If either time is missing or unparseable the zero Breakdown is returned;
// an incomplete form is not an error.
func (c Calculator) Compute(signIn, signOut, breaks string) Breakdown {
	inMinutes, okIn := ParseClock(signIn)
	outMinutes, okOut := ParseClock(signOut)
	if !okIn || !okOut {
		return Breakdown{}
	}

	totalMinutes := outMinutes - inMinutes
	if totalMinutes < 0 {
		totalMinutes += minutesPerDay
	}
	totalHours := float64(totalMinutes) / 60

	b, err := strconv.Atoi(strings.TrimSpace(breaks))
	if err != nil || b <= 0 {
		b = 1
	}

	paid := 0.5
	var unpaid float64
	if b > 1 {
		unpaid = float64(b-1) * 0.5
	}

	worked := math.Max(0, totalHours-unpaid)

	return Breakdown{
		HoursWorked:      worked,
		PaidBreakHours:   paid,
		UnpaidBreakHours: unpaid,
		Pay:              worked * c.Rate,
	}
}

// ParseClock parses a wall-clock "HH:MM" string (hour 0-23, minute 0-59)
// into minutes since midnight. ok is false for anything else.
func ParseClock(s string) (minutes int, ok bool) {
	h, m, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	if len(m) != 2 {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// BreakMinutes converts fractional break hours to whole minutes for display.
func BreakMinutes(hours float64) int {
	return int(math.Round(hours * 60))
}

// FormatHours renders fractional hours with two decimals, e.g. "7.50".
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 2, 64)
}

// FormatPay renders a pay amount with a currency prefix, e.g. "$131.25".
func FormatPay(currency string, amount float64) string {
	return fmt.Sprintf("%s%.2f", currency, amount)
}
