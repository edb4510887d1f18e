package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "duke/internal/errors"
)

// Input and persisted layouts. A moment is a date with an optional clock time.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 1504"
	ClockLayout    = "1504"

	displayDate     = "Jan 2 2006"
	displayDateTime = "Jan 2 2006 3:04PM"
)

// MomentFormatHint is shown to users who type a date we cannot read
const MomentFormatHint = "yyyy-MM-dd or yyyy-MM-dd HHmm"

// Moment is a calendar date, optionally with a time of day.
type Moment struct {
	t        time.Time
	hasClock bool
}

// ParseMoment parses s as "2006-01-02" or "2006-01-02 1504"
func ParseMoment(s string) (Moment, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateTimeLayout, s); err == nil {
		return Moment{t: t, hasClock: true}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Moment{}, apperrors.NewValidationError(
			fmt.Sprintf("%q is not a date I understand, expected: %s", s, MomentFormatHint), err,
		).WithContext("input", s)
	}
	return Moment{t: t}, nil
}

// AtClock returns the same date at the clock time given as "1504"
func (m Moment) AtClock(clock string) (Moment, error) {
	clock = strings.TrimSpace(clock)
	c, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return Moment{}, apperrors.NewValidationError(
			fmt.Sprintf("%q is not a time I understand, expected: HHmm", clock), err,
		).WithContext("input", clock)
	}
	y, mo, d := m.t.Date()
	return Moment{t: time.Date(y, mo, d, c.Hour(), c.Minute(), 0, 0, time.UTC), hasClock: true}, nil
}

// Time returns the underlying time in UTC
func (m Moment) Time() time.Time {
	return m.t
}

// HasClock reports whether the moment carries a time of day
func (m Moment) HasClock() bool {
	return m.hasClock
}

// IsZero reports whether the moment was never set
func (m Moment) IsZero() bool {
	return m.t.IsZero()
}

// Equal reports whether both moments name the same date and clock time
func (m Moment) Equal(other Moment) bool {
	return m.hasClock == other.hasClock && m.t.Equal(other.t)
}

// Format renders the moment in the input/persisted layout
func (m Moment) Format() string {
	if m.hasClock {
		return m.t.Format(DateTimeLayout)
	}
	return m.t.Format(DateLayout)
}

// String renders the moment for display, e.g. "Dec 1 2019" or "Dec 1 2019 6:00PM"
func (m Moment) String() string {
	if m.hasClock {
		return m.t.Format(displayDateTime)
	}
	return m.t.Format(displayDate)
}
