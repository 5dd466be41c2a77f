package subjective

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

var (
	subjectA = Subject{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Maths", Color: SubjectiveBlue}
	subjectB = Subject{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "English", Color: SubjectiveBlue}
	subjectC = Subject{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Science", Color: SubjectiveBlue}
)

func classBell(name string, hour, minute int, subject Subject, location string) BellTime {
	return BellTime{
		ID:      uuid.New(),
		Name:    name,
		Time:    Clock{Hour: hour, Minute: minute},
		Data:    &BellData{Kind: KindClass, SubjectID: subject.ID, Location: location},
		Enabled: true,
	}
}

// testData builds a one-variant timetable with three Monday classes,
// mirroring a real exported school.
func testData() *Subjective {
	monday := Day{
		classBell("Period 1", 9, 0, subjectA, "D14"),
		classBell("Period 2", 9, 21, subjectB, "H1"),
		classBell("Period 5", 11, 51, subjectC, "G16"),
	}
	week := Week{
		ID:       uuid.New(),
		Name:     "Week A",
		Days:     []Day{monday, {}, {}, {}, {}},
		Cyclical: true,
	}
	return New(School{
		Name:      "Test High",
		BellTimes: []Week{week},
		Location:  "Sydney",
		Version:   "2",
	}, []Subject{subjectA, subjectB, subjectC})
}

// monday returns a Monday timestamp at the given wall-clock time.
func monday(hour, minute int) time.Time {
	return time.Date(2021, time.March, 1, hour, minute, 0, 0, time.UTC)
}

func TestFindFirstAfter(t *testing.T) {
	t.Parallel()
	data := testData()
	bell, err := data.FindFirstAfter(monday(9, 5), 0)
	if err != nil {
		t.Fatalf("FindFirstAfter: %v", err)
	}
	if bell.Name != "Period 2" || bell.Time != (Clock{Hour: 9, Minute: 21}) {
		t.Errorf("got %s at %s, want Period 2 at 9:21 AM", bell.Name, bell.Time)
	}
}

func TestFindFirstAfterIncludesExactTime(t *testing.T) {
	t.Parallel()
	data := testData()
	bell, err := data.FindFirstAfter(monday(9, 0), 0)
	if err != nil {
		t.Fatalf("FindFirstAfter: %v", err)
	}
	if bell.Name != "Period 1" {
		t.Errorf("got %s, want Period 1 (bell at exactly the query time)", bell.Name)
	}
}

func TestFindFirstBefore(t *testing.T) {
	t.Parallel()
	data := testData()
	bell, err := data.FindFirstBefore(monday(12, 0), 0)
	if err != nil {
		t.Fatalf("FindFirstBefore: %v", err)
	}
	if bell.Name != "Period 5" || bell.Time != (Clock{Hour: 11, Minute: 51}) {
		t.Errorf("got %s at %s, want Period 5 at 11:51 AM", bell.Name, bell.Time)
	}
}

func TestFindNoBell(t *testing.T) {
	t.Parallel()
	data := testData()
	if _, err := data.FindFirstAfter(monday(16, 0), 0); !errors.Is(err, ErrNoBellFound) {
		t.Errorf("after last bell: err = %v, want ErrNoBellFound", err)
	}
	if _, err := data.FindFirstBefore(monday(8, 0), 0); !errors.Is(err, ErrNoBellFound) {
		t.Errorf("before first bell: err = %v, want ErrNoBellFound", err)
	}
	// Tuesday is present but empty.
	tuesday := monday(10, 0).AddDate(0, 0, 1)
	if _, err := data.FindFirstAfter(tuesday, 0); !errors.Is(err, ErrNoBellFound) {
		t.Errorf("empty day: err = %v, want ErrNoBellFound", err)
	}
}

func TestWeekendFailsWithWeekdayError(t *testing.T) {
	t.Parallel()
	data := testData()
	cases := []struct {
		date  time.Time
		index int
	}{
		{monday(10, 0).AddDate(0, 0, 5), 5}, // Saturday
		{monday(10, 0).AddDate(0, 0, 6), 6}, // Sunday
	}
	for _, tc := range cases {
		_, err := data.FindFirstAfter(tc.date, 0)
		var weekdayErr *WeekdayError
		if !errors.As(err, &weekdayErr) {
			t.Fatalf("%s: err = %v, want WeekdayError", tc.date.Weekday(), err)
		}
		if weekdayErr.Index != tc.index {
			t.Errorf("%s: index = %d, want %d", tc.date.Weekday(), weekdayErr.Index, tc.index)
		}
	}
}

func TestDisabledBellsSkippedAtEndpointsOnly(t *testing.T) {
	t.Parallel()
	day := Day{
		{ID: uuid.New(), Name: "A", Time: Clock{Hour: 9, Minute: 0}, Enabled: true},
		{ID: uuid.New(), Name: "B", Time: Clock{Hour: 9, Minute: 5}, Enabled: false},
		{ID: uuid.New(), Name: "C", Time: Clock{Hour: 9, Minute: 10}, Enabled: true},
	}
	data := New(School{BellTimes: []Week{{Days: []Day{day, {}, {}, {}, {}}}}}, nil)

	bell, err := data.FindFirstAfter(monday(9, 0), 0)
	if err != nil {
		t.Fatalf("FindFirstAfter(9:00): %v", err)
	}
	if bell.Name != "A" {
		t.Errorf("FindFirstAfter(9:00) = %s, want A", bell.Name)
	}

	// The disabled 9:05 bell can't be an endpoint, so the run starts at 9:10.
	run, err := data.FindAllAfter(monday(9, 2), 0)
	if err != nil {
		t.Fatalf("FindAllAfter(9:02): %v", err)
	}
	if len(run) != 1 || run[0].Name != "C" {
		t.Errorf("FindAllAfter(9:02) = %v, want [C]", names(run))
	}

	// Inside the span the disabled bell survives: the run is a slice of the
	// day, not a filtered copy.
	run, err = data.FindAllAfter(monday(9, 0), 0)
	if err != nil {
		t.Fatalf("FindAllAfter(9:00): %v", err)
	}
	if got := names(run); len(got) != 3 || got[0] != "A" || got[1] != "B" || got[2] != "C" {
		t.Errorf("FindAllAfter(9:00) = %v, want [A B C]", got)
	}

	bell, err = data.FindFirstBefore(monday(9, 7), 0)
	if err != nil {
		t.Fatalf("FindFirstBefore(9:07): %v", err)
	}
	if bell.Name != "A" {
		t.Errorf("FindFirstBefore(9:07) = %s, want A (disabled 9:05 skipped)", bell.Name)
	}
}

func TestFindAllBeforeDescending(t *testing.T) {
	t.Parallel()
	data := testData()
	run, err := data.FindAllBefore(monday(12, 0), 0)
	if err != nil {
		t.Fatalf("FindAllBefore: %v", err)
	}
	got := names(run)
	want := []string{"Period 5", "Period 2", "Period 1"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func names(day Day) []string {
	out := make([]string, len(day))
	for i, bell := range day {
		out[i] = bell.Name
	}
	return out
}

func TestCurrentVariant(t *testing.T) {
	t.Parallel()
	date := monday(9, 0)
	_, isoWeek := date.ISOWeek()

	if got := CurrentVariant(date, 0, 1); got != 0 {
		t.Errorf("single variant: got %d, want 0", got)
	}
	if got, want := CurrentVariant(date, 0, 2), isoWeek%2; got != want {
		t.Errorf("two variants: got %d, want %d", got, want)
	}
	// Adding any multiple of the variant count to the offset is a no-op.
	for _, count := range []int{1, 2, 3, 4} {
		base := CurrentVariant(date, 1, count)
		for k := 1; k <= 3; k++ {
			if got := CurrentVariant(date, 1+k*count, count); got != base {
				t.Errorf("count %d: offset +%d changed variant: %d != %d", count, k*count, got, base)
			}
		}
	}
}

func TestCurrentVariantNegativeOffset(t *testing.T) {
	t.Parallel()
	date := monday(9, 0)
	for _, count := range []int{1, 2, 3, 4} {
		for offset := -3 * count; offset <= 0; offset++ {
			got := CurrentVariant(date, offset, count)
			if got < 0 || got >= count {
				t.Fatalf("count %d offset %d: variant %d out of range", count, offset, got)
			}
			// A negative offset is the same rotation as its positive residue.
			if want := CurrentVariant(date, offset+3*count, count); got != want {
				t.Errorf("count %d offset %d: got %d, want %d", count, offset, got, want)
			}
		}
	}
}

func TestNegativeOffsetRotatesBackwards(t *testing.T) {
	t.Parallel()
	weekA := Week{Name: "Week A", Days: []Day{{classBell("A1", 9, 0, subjectA, "D14")}, {}, {}, {}, {}}}
	weekB := Week{Name: "Week B", Days: []Day{{classBell("B1", 9, 0, subjectB, "H1")}, {}, {}, {}, {}}}
	data := New(School{BellTimes: []Week{weekA, weekB}}, []Subject{subjectA, subjectB})

	date := monday(9, 0)
	back, err := data.FindFirstAfter(date, -1)
	if err != nil {
		t.Fatalf("offset -1: %v", err)
	}
	forward, err := data.FindFirstAfter(date, 1)
	if err != nil {
		t.Fatalf("offset 1: %v", err)
	}
	if back.Name != forward.Name {
		t.Errorf("offsets -1 and 1 over two variants differ: %s != %s", back.Name, forward.Name)
	}
}

func TestShortWeekFailsWithMalformedWeekError(t *testing.T) {
	t.Parallel()
	short := Week{Name: "Week A", Days: []Day{{classBell("A1", 9, 0, subjectA, "D14")}, {}, {}}}
	data := New(School{BellTimes: []Week{short}}, []Subject{subjectA})

	thursday := monday(9, 0).AddDate(0, 0, 3)
	_, err := data.FindFirstAfter(thursday, 0)
	var malformed *MalformedWeekError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedWeekError", err)
	}
	if malformed.Week != "Week A" || malformed.Days != 3 {
		t.Errorf("error carries %q/%d, want %q/%d", malformed.Week, malformed.Days, "Week A", 3)
	}
	if errors.Is(err, ErrNoBellFound) {
		t.Error("a truncated week must not read as an empty result")
	}

	// Days inside the truncated range still resolve.
	if _, err := data.FindFirstAfter(monday(9, 0), 0); err != nil {
		t.Errorf("Monday on truncated week: %v", err)
	}
}

func TestVariantRotationSelectsWeek(t *testing.T) {
	t.Parallel()
	weekA := Week{Name: "Week A", Days: []Day{{classBell("A1", 9, 0, subjectA, "D14")}, {}, {}, {}, {}}}
	weekB := Week{Name: "Week B", Days: []Day{{classBell("B1", 9, 0, subjectB, "H1")}, {}, {}, {}, {}}}
	data := New(School{BellTimes: []Week{weekA, weekB}}, []Subject{subjectA, subjectB})

	date := monday(9, 0)
	first, err := data.FindFirstAfter(date, 0)
	if err != nil {
		t.Fatalf("offset 0: %v", err)
	}
	second, err := data.FindFirstAfter(date, 1)
	if err != nil {
		t.Fatalf("offset 1: %v", err)
	}
	if first.Name == second.Name {
		t.Errorf("offset 0 and 1 selected the same week: %s", first.Name)
	}
	next, err := data.FindFirstAfter(date.AddDate(0, 0, 7), 0)
	if err != nil {
		t.Fatalf("next week: %v", err)
	}
	if next.Name == first.Name {
		t.Errorf("consecutive ISO weeks selected the same variant: %s", next.Name)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	data := testData()
	bell := &data.School.BellTimes[0].Days[0][2]

	line, err := data.Format(bell, false)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if line != "Science in G16 Period 5" {
		t.Errorf("line = %q, want %q", line, "Science in G16 Period 5")
	}

	line, err = data.Format(bell, true)
	if err != nil {
		t.Fatalf("Format with time: %v", err)
	}
	if line != "Science in G16 Period 5 11:51 AM" {
		t.Errorf("line = %q, want %q", line, "Science in G16 Period 5 11:51 AM")
	}
}

func TestFormatKindsAndMarkers(t *testing.T) {
	t.Parallel()
	data := testData()
	cases := []struct {
		bell BellTime
		want string
	}{
		{BellTime{Name: "Lunch", Time: Clock{Hour: 12, Minute: 40}, Data: &BellData{Kind: KindBreak}, Enabled: true}, "Break Lunch"},
		{BellTime{Name: "Assembly", Time: Clock{Hour: 8, Minute: 45}, Data: &BellData{Kind: KindTime}, Enabled: true}, "Time Assembly"},
		{BellTime{Name: "Reminder", Time: Clock{Hour: 14, Minute: 0}, Enabled: true}, "Reminder"},
	}
	for _, tc := range cases {
		line, err := data.Format(&tc.bell, false)
		if err != nil {
			t.Fatalf("%s: %v", tc.bell.Name, err)
		}
		if line != tc.want {
			t.Errorf("line = %q, want %q", line, tc.want)
		}
	}
}

func TestFormatUnknownSubjectFails(t *testing.T) {
	t.Parallel()
	data := testData()
	missing := uuid.MustParse("99999999-9999-9999-9999-999999999999")
	bell := BellTime{
		Name:    "Period 9",
		Time:    Clock{Hour: 9, Minute: 0},
		Data:    &BellData{Kind: KindClass, SubjectID: missing, Location: "X1"},
		Enabled: true,
	}
	_, err := data.Format(&bell, false)
	var notFound *SubjectNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want SubjectNotFoundError", err)
	}
	if notFound.ID != missing {
		t.Errorf("error carries ID %s, want %s", notFound.ID, missing)
	}
}

func TestNextDayWithBells(t *testing.T) {
	t.Parallel()
	data := testData()
	// After Monday's bells are done, the next day with bells is the following
	// Monday (all other days are empty).
	day, date, ok := data.NextDayWithBells(monday(16, 0), 0)
	if !ok {
		t.Fatal("expected a next day with bells")
	}
	if date.Weekday() != time.Monday {
		t.Errorf("date = %s (%s), want a Monday", date, date.Weekday())
	}
	if len(day) != 3 {
		t.Errorf("day has %d bells, want 3", len(day))
	}

	empty := New(School{BellTimes: []Week{{Days: []Day{{}, {}, {}, {}, {}}}}}, nil)
	if _, _, ok := empty.NextDayWithBells(monday(16, 0), 0); ok {
		t.Error("empty timetable reported a next day")
	}
}
