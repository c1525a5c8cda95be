// Package daterange turns named report filters into concrete inclusive date ranges.
package daterange

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/store_manager_app/internal/apperrors"
	"github.com/SscSPs/store_manager_app/internal/core/domain"
)

// Resolver resolves filter names relative to an injected clock and location.
type Resolver struct {
	now       func() time.Time
	loc       *time.Location
	weekStart time.Weekday
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock overrides the time source. Tests use it to pin "today".
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLocation sets the time zone that defines a calendar day.
func WithLocation(loc *time.Location) Option {
	return func(r *Resolver) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithWeekStart sets the first day of a week for the thisWeek filter.
func WithWeekStart(day time.Weekday) Option {
	return func(r *Resolver) {
		r.weekStart = day
	}
}

// NewResolver creates a Resolver. Defaults: time.Now, time.Local, weeks start on Monday.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		now:       time.Now,
		loc:       time.Local,
		weekStart: time.Monday,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Location returns the resolver's calendar time zone.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Resolve maps a filter name and, for custom ranges, explicit bounds to an inclusive range.
// Explicit bounds are ignored for every filter except custom.
func (r *Resolver) Resolve(name domain.FilterName, from, to *time.Time) (domain.DateRange, error) {
	today := StartOfDay(r.now().In(r.loc))

	switch name {
	case domain.FilterToday:
		return dayRange(today), nil
	case domain.FilterYesterday:
		return dayRange(today.AddDate(0, 0, -1)), nil
	case domain.FilterThisWeek:
		offset := (int(today.Weekday()) - int(r.weekStart) + 7) % 7
		start := today.AddDate(0, 0, -offset)
		return domain.DateRange{Start: start, End: start.AddDate(0, 0, 7).Add(-time.Nanosecond)}, nil
	case domain.FilterThisMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, r.loc)
		return monthRange(start), nil
	case domain.FilterLastMonth:
		start := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, r.loc)
		return monthRange(start), nil
	case domain.FilterLast7Days:
		return domain.DateRange{Start: today.AddDate(0, 0, -6), End: EndOfDay(today)}, nil
	case domain.FilterLast30Days:
		return domain.DateRange{Start: today.AddDate(0, 0, -29), End: EndOfDay(today)}, nil
	case domain.FilterCustom:
		return r.custom(from, to)
	default:
		return domain.DateRange{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidFilter, name)
	}
}

func (r *Resolver) custom(from, to *time.Time) (domain.DateRange, error) {
	if from == nil || to == nil {
		return domain.DateRange{}, fmt.Errorf("%w: custom range requires both start and end", apperrors.ErrValidation)
	}

	start := from.In(r.loc)
	if isMidnight(start) {
		start = StartOfDay(start)
	}
	end := to.In(r.loc)
	if isMidnight(end) {
		end = EndOfDay(end)
	}

	if end.Before(start) {
		return domain.DateRange{}, fmt.Errorf("%w: range end %s is before start %s",
			apperrors.ErrValidation, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return domain.DateRange{Start: start, End: end}, nil
}

func dayRange(day time.Time) domain.DateRange {
	return domain.DateRange{Start: day, End: EndOfDay(day)}
}

func monthRange(first time.Time) domain.DateRange {
	return domain.DateRange{Start: first, End: first.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// StartOfDay truncates t to midnight in t's own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// ParseWeekday parses an English weekday name such as "monday" or "Sun".
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || (len(name) >= 3 && strings.HasPrefix(full, name)) {
			return d, nil
		}
	}
	return time.Monday, fmt.Errorf("unknown weekday %q", s)
}

// DateLayout is the date-only format accepted for explicit bounds and expense dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date as midnight in loc, or an RFC3339 timestamp as given.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is neither %s nor RFC3339", apperrors.ErrValidation, s, DateLayout)
	}
	return t, nil
}
