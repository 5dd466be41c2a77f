package subjective

import (
	"fmt"
	"time"
)

// Clock is a zone-naive wall-clock time with minute precision. Bell times
// carry no date and no timezone; comparisons are plain minute arithmetic.
type Clock struct {
	Hour   int
	Minute int
}

// ClockOf extracts the wall-clock portion of t, discarding seconds.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// NewClock validates hour and minute ranges and returns the clock value.
func NewClock(hour, minute int) (Clock, error) {
	if hour > 23 || hour < 0 || minute > 59 || minute < 0 {
		return Clock{}, &TimeRangeError{Hour: hour, Minute: minute}
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// minutes returns the offset from midnight.
func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is strictly earlier than o.
func (c Clock) Before(o Clock) bool {
	return c.minutes() < o.minutes()
}

// After reports whether c is strictly later than o.
func (c Clock) After(o Clock) bool {
	return c.minutes() > o.minutes()
}

// At anchors the clock to the date of day, yielding an absolute time in the
// same location. Useful for duration arithmetic against a real timestamp.
func (c Clock) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, day.Location())
}

// String renders the clock in 12-hour form, e.g. "9:21 AM".
func (c Clock) String() string {
	suffix := "AM"
	hour := c.Hour
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		hour -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute, suffix)
}
