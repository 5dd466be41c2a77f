package subjective

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNoBellFound indicates a valid lookup that matched nothing: the resolved
// day has no enabled bell on the queried side of the time. Callers branch on
// it; it is not a defect.
var ErrNoBellFound = errors.New("no bell found")

// WeekdayError reports a date that maps to Saturday or Sunday, which have no
// slot in the five-day week array. Index is days from Monday (0 = Monday).
type WeekdayError struct {
	Index int
	Name  string
}

func (e *WeekdayError) Error() string {
	return fmt.Sprintf("weekday index %d (%s) is outside the Monday-Friday range", e.Index, e.Name)
}

// MalformedWeekError reports a week variant carrying fewer day slots than
// the Monday-Friday range it has to cover. This signals corrupt data, not an
// empty result.
type MalformedWeekError struct {
	Week string
	Days int
}

func (e *MalformedWeekError) Error() string {
	return fmt.Sprintf("week %q has %d day slots, expected at least %d", e.Week, e.Days, weekdaysPerWeek)
}

// SubjectNotFoundError reports a class bell referencing a subject ID absent
// from the aggregate. This signals corrupt data, not an empty result.
type SubjectNotFoundError struct {
	ID uuid.UUID
}

func (e *SubjectNotFoundError) Error() string {
	return fmt.Sprintf("no subject with ID %s exists in the loaded data", e.ID)
}

// TimeRangeError reports hour/minute fields outside 0..23 / 0..59 in a bell
// record. It fails the whole document load; there is no per-record recovery.
type TimeRangeError struct {
	Hour   int
	Minute int
}

func (e *TimeRangeError) Error() string {
	return fmt.Sprintf("bell time %02d:%02d is out of range", e.Hour, e.Minute)
}

// LoadErrorKind classifies a data file load failure.
type LoadErrorKind int

const (
	// LoadNotFound means the data file does not exist at the expected path.
	LoadNotFound LoadErrorKind = iota
	// LoadRead means the file exists but could not be read.
	LoadRead
	// LoadParse means the file contents could not be parsed as Subjective data.
	LoadParse
)

// LoadError reports a failure to load the Subjective data file. The whole
// aggregate is unavailable; there is no partial-document recovery.
type LoadError struct {
	Kind LoadErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case LoadNotFound:
		return fmt.Sprintf("couldn't find Subjective data file, expected at %q", e.Path)
	case LoadRead:
		return fmt.Sprintf("failed to read Subjective data file at %q: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("failed to parse Subjective data file at %q (invalid or outdated data, try re-exporting): %v", e.Path, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SaveError reports a failure to persist the Subjective data file.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save Subjective data to %q: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
