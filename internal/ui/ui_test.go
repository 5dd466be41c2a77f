package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestNowHeading(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := &Printer{Out: &buf}
	p.Now(time.Date(2021, time.March, 1, 9, 5, 0, 0, time.UTC))
	out := buf.String()
	for _, want := range []string{"Now", "9:05 AM", "Monday, March 1, 2021"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBellIndents(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := &Printer{Out: &buf}
	p.Bell("Science in G16 Period 5")
	if got := buf.String(); !strings.HasPrefix(got, "    ") {
		t.Errorf("bell line not indented: %q", got)
	}
}

func TestCountdown(t *testing.T) {
	t.Parallel()
	now := time.Date(2021, time.March, 1, 9, 5, 0, 0, time.UTC)
	bell := now.Add(16 * time.Minute)
	got := Countdown(bell, now)
	if !strings.Contains(got, "minutes") || !strings.Contains(got, "from now") {
		t.Errorf("Countdown = %q, want a \"minutes from now\" phrase", got)
	}
	past := now.Add(-5 * time.Minute)
	if got := Countdown(past, now); !strings.Contains(got, "ago") {
		t.Errorf("Countdown for past = %q, want an \"ago\" phrase", got)
	}
}

func TestUpcomingShowsTimeAndCountdown(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := &Printer{Out: &buf}
	now := time.Date(2021, time.March, 1, 9, 5, 0, 0, time.UTC)
	p.Upcoming(now.Add(16*time.Minute), now)
	out := buf.String()
	for _, want := range []string{"Upcoming", "9:21 AM", "from now"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
