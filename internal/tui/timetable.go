package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/subjectivelabs/sj/internal/subjective"
)

var weekdayLabels = [5]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// reloadedMsg carries a freshly loaded aggregate after the data file changed
// on disk. A nil Data means the reload failed and the old data stays up.
type reloadedMsg struct {
	Data *subjective.Subjective
	Err  error
}

// TimetableModel browses the week variants and weekdays of a timetable.
type TimetableModel struct {
	data    *subjective.Subjective
	variant int
	weekday int
	keys    KeyMap

	// Live reload, optional.
	watch   <-chan struct{}
	dataDir string

	note     string
	quitting bool
}

// NewTimetable creates a viewer positioned on the first variant's Monday.
func NewTimetable(data *subjective.Subjective) TimetableModel {
	return TimetableModel{data: data, keys: DefaultKeyMap()}
}

// WithReload wires a change channel and the directory to reload from. Each
// signal triggers a reload of the data file.
func (m TimetableModel) WithReload(dir string, changes <-chan struct{}) TimetableModel {
	m.dataDir = dir
	m.watch = changes
	return m
}

func (m TimetableModel) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange blocks on the watcher channel and reloads the data file.
func (m TimetableModel) waitForChange() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	watch, dir := m.watch, m.dataDir
	return func() tea.Msg {
		if _, ok := <-watch; !ok {
			return nil
		}
		data, err := subjective.Load(dir)
		return reloadedMsg{Data: data, Err: err}
	}
}

func (m TimetableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reloadedMsg:
		if msg.Err != nil {
			m.note = "reload failed: " + msg.Err.Error()
		} else if msg.Data != nil {
			m.data = msg.Data
			m.note = "timetable reloaded"
			m.clamp()
		}
		return m, m.waitForChange()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.weekday = (m.weekday + 4) % 5
		case key.Matches(msg, m.keys.Right):
			m.weekday = (m.weekday + 1) % 5
		case key.Matches(msg, m.keys.NextVariant):
			if count := len(m.data.School.BellTimes); count > 0 {
				m.variant = (m.variant + 1) % count
			}
		case key.Matches(msg, m.keys.PrevVariant):
			if count := len(m.data.School.BellTimes); count > 0 {
				m.variant = (m.variant + count - 1) % count
			}
		}
	}
	return m, nil
}

// clamp keeps the cursor valid after a reload shrinks the variant list.
func (m *TimetableModel) clamp() {
	if count := len(m.data.School.BellTimes); m.variant >= count {
		m.variant = 0
	}
}

func (m TimetableModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(styleTitle.Render(m.data.School.Name) + "\n\n")

	weeks := m.data.School.BellTimes
	if len(weeks) == 0 {
		b.WriteString(styleMuted.Render("no timetable data") + "\n")
		return b.String()
	}

	tabs := make([]string, len(weeks))
	for i, week := range weeks {
		if i == m.variant {
			tabs[i] = styleTabActive.Render(week.Name)
		} else {
			tabs[i] = styleTabInactive.Render(week.Name)
		}
	}
	b.WriteString(strings.Join(tabs, "  ") + "\n")

	days := make([]string, len(weekdayLabels))
	for i, label := range weekdayLabels {
		if i == m.weekday {
			days[i] = styleTabActive.Render(label)
		} else {
			days[i] = styleTabInactive.Render(label)
		}
	}
	b.WriteString(strings.Join(days, "  ") + "\n\n")

	b.WriteString(m.renderDay(weeks[m.variant]))

	if m.note != "" {
		b.WriteString("\n" + styleMuted.Render(m.note) + "\n")
	}
	b.WriteString("\n" + styleMuted.Render("←/→ day · tab week · q quit") + "\n")
	return b.String()
}

func (m TimetableModel) renderDay(week subjective.Week) string {
	if m.weekday >= len(week.Days) || len(week.Days[m.weekday]) == 0 {
		return styleMuted.Render("  no bells") + "\n"
	}
	var b strings.Builder
	for i := range week.Days[m.weekday] {
		bell := &week.Days[m.weekday][i]
		line, err := m.data.Format(bell, false)
		if err != nil {
			line = fmt.Sprintf("%s %s", bell.Name, styleMuted.Render("(unknown subject)"))
		}
		line = fmt.Sprintf("  %s  %s", styleMuted.Render(fmt.Sprintf("%8s", bell.Time)), m.styleBell(bell).Render(line))
		b.WriteString(line + "\n")
	}
	return b.String()
}

// styleBell colors class bells with their subject's color; disabled bells
// render struck through.
func (m TimetableModel) styleBell(bell *subjective.BellTime) lipgloss.Style {
	if !bell.Enabled {
		return styleDisabled
	}
	if bell.Data != nil && bell.Data.IsClass() {
		if subject, ok := m.data.SubjectByID(bell.Data.SubjectID); ok {
			return lipgloss.NewStyle().Foreground(lipgloss.Color(subject.Color.Hex()))
		}
	}
	return lipgloss.NewStyle().Foreground(colorWhite)
}

// ShowTimetable runs the viewer. When dir is non-empty the view live-reloads
// whenever the data file under dir changes.
func ShowTimetable(data *subjective.Subjective, dir string) error {
	model := NewTimetable(data)
	var watcher *Watcher
	if dir != "" {
		if w, err := NewWatcher(dir); err == nil {
			if w.Start() == nil {
				watcher = w
				model = model.WithReload(dir, w.Changes)
			} else {
				w.watcher.Close()
			}
		}
	}
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if watcher != nil {
		watcher.Stop()
	}
	return err
}
