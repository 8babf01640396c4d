package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ErrEndBeforeOrEqualStart is the single interval ordering violation. It is
// always user-correctable: the customer adjusts either endpoint and the
// check reruns.
var ErrEndBeforeOrEqualStart = errors.New("end must be after start")

var msPerHour = decimal.NewFromInt(3_600_000)

// CombineDateTime merges a calendar date (YYYY-MM-DD) and a 24-hour clock
// time (HH:MM) into a single instant. All instants live in one implicit
// wall-clock zone; no timezone conversion happens anywhere in the
// calculator. Unparsable input is an upstream bug (the pickers constrain
// the format), so this fails loudly instead of degrading.
func CombineDateTime(dateStr, clockStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, dateStr+" "+clockStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", dateStr, clockStr, err)
	}
	return t, nil
}

// Interval is the [start, end) span of a booking request. Construction is
// the correctness gate: an Interval value always has positive duration.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if err := ValidateInterval(start, end); err != nil {
		return Interval{}, err
	}
	return Interval{start: start, end: end}, nil
}

// NewIntervalFromParts builds an Interval straight from the four wizard
// fields. Same-day pairs with end time at or before start time fail with
// ErrEndBeforeOrEqualStart; multi-day spans have no upper bound.
func NewIntervalFromParts(startDate, startTime, endDate, endTime string) (Interval, error) {
	start, err := CombineDateTime(startDate, startTime)
	if err != nil {
		return Interval{}, err
	}
	end, err := CombineDateTime(endDate, endTime)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(start, end)
}

// ValidateInterval must be re-run at submission time even when the pair was
// checked earlier in the wizard: editing the start after setting the end
// can invalidate a previously valid pair.
func ValidateInterval(start, end time.Time) error {
	if !end.After(start) {
		return ErrEndBeforeOrEqualStart
	}
	return nil
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// Hours is the interval length in fractional hours, rounded the way the
// quote displays it. Always positive for a constructed Interval.
func (iv Interval) Hours() decimal.Decimal {
	return DurationHours(iv.start, iv.end)
}

// DurationHours computes elapsed milliseconds over 3,600,000, rounded to
// one decimal place half away from zero (pinned by tests). It is a pure
// transform: called on an unvalidated pair it returns the raw, possibly
// non-positive value rather than erroring; ordering is ValidateInterval's
// job, not this function's.
func DurationHours(start, end time.Time) decimal.Decimal {
	ms := end.Sub(start).Milliseconds()
	return decimal.NewFromInt(ms).DivRound(msPerHour, 1)
}

// MinStartDate is the earliest selectable start date: tomorrow relative to
// the injected "today" (today itself is excluded). The reference instant is
// a parameter so the rule stays deterministic and testable.
func MinStartDate(today time.Time) time.Time {
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return midnight.AddDate(0, 0, 1)
}
