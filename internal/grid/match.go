package grid

import (
	"log/slog"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
)

// LocationAll is the sentinel that disables the secondary location filter.
const LocationAll int64 = 0

// SameLocalDay reports whether a and b fall on the same calendar day when
// both are viewed in loc. This is deliberately not instant or UTC-day
// equality: a stored timestamp may carry a time-of-day component that shifts
// the UTC day relative to the intended business day.
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// ShiftOn finds the shift among records that falls on the given local day,
// optionally constrained to a location. At most one shift per employee per
// day is the intended invariant; if legacy rows violate it, the first match
// wins and the surplus is logged as a data-integrity diagnostic. Records
// with an unset date are skipped and logged, never fatal.
func ShiftOn(records []domain.Shift, day time.Time, locationID int64, loc *time.Location) *domain.Shift {
	var found *domain.Shift
	for i := range records {
		s := &records[i]
		if s.Date.IsZero() {
			slog.Warn("shift with unparsable date excluded from grid", "shiftID", s.ID)
			continue
		}
		if locationID != LocationAll && s.Location.ID != locationID {
			continue
		}
		if !SameLocalDay(s.Date, day, loc) {
			continue
		}
		if found != nil {
			slog.Warn("multiple shifts for one employee on one day",
				"kept", found.ID, "dropped", s.ID, "day", day.Format("2006-01-02"))
			continue
		}
		found = s
	}
	return found
}

// AvailabilityOn collects every availability entry among records that falls
// on the given local day, optionally constrained to a location. Multiple
// matches are valid, e.g. one entry per location.
func AvailabilityOn(records []domain.Availability, day time.Time, locationID int64, loc *time.Location) []domain.Availability {
	var matches []domain.Availability
	for _, a := range records {
		if a.Date.IsZero() {
			slog.Warn("availability with unparsable date excluded from grid", "availabilityID", a.ID)
			continue
		}
		if locationID != LocationAll && a.Location.ID != locationID {
			continue
		}
		if !SameLocalDay(a.Date, day, loc) {
			continue
		}
		matches = append(matches, a)
	}
	return matches
}
