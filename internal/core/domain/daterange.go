package domain

import (
	"fmt"
	"time"
)

// FilterName names a date-range preset.
type FilterName string

const (
	FilterToday      FilterName = "today"
	FilterYesterday  FilterName = "yesterday"
	FilterThisWeek   FilterName = "thisWeek"
	FilterThisMonth  FilterName = "thisMonth"
	FilterLastMonth  FilterName = "lastMonth"
	FilterLast7Days  FilterName = "last7Days"
	FilterLast30Days FilterName = "last30Days"
	FilterCustom     FilterName = "custom"
)

// DateRange is a closed interval: both Start and End are included.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies within [Start, End].
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// TemporalField selects which timestamp of a record a date filter applies to.
type TemporalField string

const (
	CreatedAt    TemporalField = "createdAt"
	OccurredDate TemporalField = "date"
)

// Timestamped is implemented by records that can be filtered by date.
// Asking for a field the record does not carry returns an error.
type Timestamped interface {
	Timestamp(field TemporalField) (time.Time, error)
}

func unsupportedField(kind string, field TemporalField) error {
	return fmt.Errorf("%s has no %q timestamp", kind, field)
}
