// Package ui renders sj's terminal output. All styled text goes through the
// Printer so commands stay free of escape-code handling.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Semantic styles for the now view.
var (
	styleHeading   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	styleDim       = lipgloss.NewStyle().Faint(true)
	styleCountdown = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleError     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Printer writes styled lines for the sj commands. Out defaults to stdout;
// verbose notes always go to stderr.
type Printer struct {
	Out     io.Writer
	Verbose bool
}

// New returns a Printer writing to stdout.
func New() *Printer {
	return &Printer{Out: os.Stdout}
}

// Now prints the heading line with the current wall-clock time and date,
// e.g. "Now 9:05 AM Monday, March 1, 2021".
func (p *Printer) Now(at time.Time) {
	fmt.Fprintf(p.Out, "%s %s %s\n",
		styleHeading.Render("Now"),
		styleDim.Render(at.Format("3:04 PM")),
		styleDim.Render(at.Format("Monday, January 2, 2006")))
}

// Bell prints one indented bell description line.
func (p *Printer) Bell(line string) {
	fmt.Fprintf(p.Out, "    %s\n", line)
}

// Upcoming prints the heading for the next bell with its time and a
// countdown, e.g. "Upcoming 9:21 AM 16 minutes from now".
func (p *Printer) Upcoming(bellAt, now time.Time) {
	fmt.Fprintf(p.Out, "%s %s %s\n",
		styleHeading.Render("Upcoming"),
		styleDim.Render(bellAt.Format("3:04 PM")),
		styleCountdown.Render(Countdown(bellAt, now)))
}

// UpcomingDay prints the heading for a future day's bells once the current
// day is over, e.g. "Upcoming Monday".
func (p *Printer) UpcomingDay(weekday string) {
	fmt.Fprintf(p.Out, "%s %s\n", styleHeading.Render("Upcoming"), styleDim.Render(weekday))
}

// Next prints the heading for the remaining bells of the day.
func (p *Printer) Next() {
	fmt.Fprintln(p.Out, styleHeading.Render("Next"))
}

// Successf prints a plain confirmation line, e.g. after a save.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Errorf prints a styled error line to stderr.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleError.Render("error:"), fmt.Sprintf(format, args...))
}

// Infof prints a progress note to stderr when verbose mode is on.
func (p *Printer) Infof(format string, args ...any) {
	if !p.Verbose {
		return
	}
	fmt.Fprintln(os.Stderr, styleDim.Render(fmt.Sprintf(format, args...)))
}

// Countdown phrases the distance between a bell and now, e.g.
// "16 minutes from now".
func Countdown(bellAt, now time.Time) string {
	return humanize.RelTime(bellAt, now, "ago", "from now")
}
