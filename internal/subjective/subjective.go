package subjective

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const weekdaysPerWeek = 5

// Subjective is the root aggregate: one school plus the user's subjects.
// The graph is built once (by Load or a constructor) and treated as
// immutable for the lifetime of a query session.
type Subjective struct {
	School   School    `json:"school"`
	Subjects []Subject `json:"subjects"`
}

// New creates an aggregate from a school and subject list.
func New(school School, subjects []Subject) *Subjective {
	return &Subjective{School: school, Subjects: subjects}
}

// FromSchool creates an aggregate with an empty subject list, the state
// right after pulling a school from the catalog.
func FromSchool(school School) *Subjective {
	return &Subjective{School: school, Subjects: []Subject{}}
}

// CurrentVariant picks the active week variant for a calendar date:
// (ISO week number + variantOffset) mod variantCount. The offset lets a user
// realign the rotation to the school's actual cycle start without touching
// the data. The modulo is floored so negative offsets rotate backwards
// instead of producing a negative index.
func CurrentVariant(date time.Time, variantOffset, variantCount int) int {
	_, week := date.ISOWeek()
	variant := (week + variantOffset) % variantCount
	if variant < 0 {
		variant += variantCount
	}
	return variant
}

// daysFromMonday maps a weekday to the 0-based index used to address
// Week.Days (0 = Monday .. 6 = Sunday).
func daysFromMonday(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// DayAt resolves the bells for the given date, selecting the week variant by
// rotation. Saturday and Sunday dates fail with a WeekdayError, distinct
// from an empty result.
func (s *Subjective) DayAt(date time.Time, variantOffset int) (Day, error) {
	weekday := daysFromMonday(date.Weekday())
	if weekday >= weekdaysPerWeek {
		return nil, &WeekdayError{Index: weekday, Name: date.Weekday().String()}
	}
	if len(s.School.BellTimes) == 0 {
		return nil, ErrNoBellFound
	}
	variant := CurrentVariant(date, variantOffset, len(s.School.BellTimes))
	week := &s.School.BellTimes[variant]
	if weekday >= len(week.Days) {
		return nil, &MalformedWeekError{Week: week.Name, Days: len(week.Days)}
	}
	return week.Days[weekday], nil
}

// FindFirstAfter returns the first enabled bell at or after the wall-clock
// time of at, within at's day. Bells sharing a time resolve in stored order.
func (s *Subjective) FindFirstAfter(at time.Time, variantOffset int) (*BellTime, error) {
	day, err := s.DayAt(at, variantOffset)
	if err != nil {
		return nil, err
	}
	clock := ClockOf(at)
	for i := range day {
		if day[i].Enabled && !day[i].Time.Before(clock) {
			return &day[i], nil
		}
	}
	return nil, ErrNoBellFound
}

// FindFirstBefore returns the last enabled bell at or before the wall-clock
// time of at, within at's day.
func (s *Subjective) FindFirstBefore(at time.Time, variantOffset int) (*BellTime, error) {
	day, err := s.DayAt(at, variantOffset)
	if err != nil {
		return nil, err
	}
	clock := ClockOf(at)
	for i := len(day) - 1; i >= 0; i-- {
		if day[i].Enabled && !day[i].Time.After(clock) {
			return &day[i], nil
		}
	}
	return nil, ErrNoBellFound
}

// FindAllAfter returns the day's tail starting at the first enabled bell at
// or after at, in ascending order. Only the endpoint search is
// disabled-aware: a disabled bell inside the remaining range stays in the
// result, because the run is a slice of the day, not a filtered copy.
func (s *Subjective) FindAllAfter(at time.Time, variantOffset int) (Day, error) {
	day, err := s.DayAt(at, variantOffset)
	if err != nil {
		return nil, err
	}
	clock := ClockOf(at)
	for i := range day {
		if day[i].Enabled && !day[i].Time.Before(clock) {
			return day[i:], nil
		}
	}
	return nil, ErrNoBellFound
}

// FindAllBefore returns the day's head ending at the last enabled bell at or
// before at, in descending order. The same endpoint-only disabled rule as
// FindAllAfter applies.
func (s *Subjective) FindAllBefore(at time.Time, variantOffset int) (Day, error) {
	day, err := s.DayAt(at, variantOffset)
	if err != nil {
		return nil, err
	}
	clock := ClockOf(at)
	for i := len(day) - 1; i >= 0; i-- {
		if day[i].Enabled && !day[i].Time.After(clock) {
			run := make(Day, 0, i+1)
			for j := i; j >= 0; j-- {
				run = append(run, day[j])
			}
			return run, nil
		}
	}
	return nil, ErrNoBellFound
}

// NextDayWithBells scans forward from the day after date, rotating through
// week variants, for the next weekday that has any bells. It gives the `now`
// view something to show once the current day is over.
func (s *Subjective) NextDayWithBells(date time.Time, variantOffset int) (Day, time.Time, bool) {
	variantCount := len(s.School.BellTimes)
	if variantCount == 0 {
		return nil, time.Time{}, false
	}
	// A full sweep of every variant's week is the upper bound; beyond that
	// the timetable is empty.
	for i := 1; i <= 7*variantCount; i++ {
		next := date.AddDate(0, 0, i)
		day, err := s.DayAt(next, variantOffset)
		if err != nil || len(day) == 0 {
			continue
		}
		return day, next, true
	}
	return nil, time.Time{}, false
}

// SubjectByID finds a subject in the aggregate.
func (s *Subjective) SubjectByID(id uuid.UUID) (*Subject, bool) {
	for i := range s.Subjects {
		if s.Subjects[i].ID == id {
			return &s.Subjects[i], true
		}
	}
	return nil, false
}

// Format renders a bell as a single descriptive line: "Science in G16
// Period 5" for class bells, "Break Lunch" for the fixed kinds, or just the
// bell name when it carries no data. withTime appends the bell's wall-clock
// time. A class bell whose subject is missing from the aggregate is corrupt
// data and fails with a SubjectNotFoundError.
func (s *Subjective) Format(bell *BellTime, withTime bool) (string, error) {
	var line string
	switch {
	case bell.Data == nil:
		line = bell.Name
	case bell.Data.IsClass():
		subject, ok := s.SubjectByID(bell.Data.SubjectID)
		if !ok {
			return "", &SubjectNotFoundError{ID: bell.Data.SubjectID}
		}
		line = fmt.Sprintf("%s in %s %s", subject.Name, bell.Data.Location, bell.Name)
	default:
		line = fmt.Sprintf("%s %s", bell.Data.Kind, bell.Name)
	}
	if withTime {
		line = fmt.Sprintf("%s %s", line, bell.Time)
	}
	return line, nil
}
