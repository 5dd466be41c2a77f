// Package tui holds the interactive surfaces: the school picker used by
// `sj data pull` and the timetable viewer behind `sj timetable show`.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/subjectivelabs/sj/internal/subjective"
)

// ErrPickerCancelled indicates the user backed out of the school picker.
var ErrPickerCancelled = errors.New("school selection cancelled")

// PickerModel is a filterable cursor list over the school catalog.
type PickerModel struct {
	schools []subjective.School
	matches []int // indices into schools that pass the filter
	filter  string
	cursor  int
	keys    KeyMap

	choice   int // index into schools, -1 until chosen
	quitting bool
}

// NewPicker creates a picker over the given catalog.
func NewPicker(schools []subjective.School) PickerModel {
	m := PickerModel{
		schools: schools,
		keys:    DefaultKeyMap(),
		choice:  -1,
	}
	m.refilter()
	return m
}

// Choice returns the selected school once the picker has quit.
func (m PickerModel) Choice() (*subjective.School, bool) {
	if m.choice < 0 {
		return nil, false
	}
	return &m.schools[m.choice], true
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	// Only esc/ctrl+c cancel; "q" has to stay typable in the filter.
	case keyMsg.Type == tea.KeyEsc || keyMsg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		if len(m.matches) > 0 {
			m.choice = m.matches[m.cursor]
			m.quitting = true
			return m, tea.Quit
		}
	case keyMsg.Type == tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.refilter()
		}
	case keyMsg.Type == tea.KeyRunes:
		m.filter += string(keyMsg.Runes)
		m.refilter()
	}
	return m, nil
}

// refilter rebuilds the match list and clamps the cursor.
func (m *PickerModel) refilter() {
	m.matches = m.matches[:0]
	needle := strings.ToLower(m.filter)
	for i := range m.schools {
		if needle == "" || strings.Contains(strings.ToLower(m.schools[i].Name), needle) {
			m.matches = append(m.matches, i)
		}
	}
	if m.cursor >= len(m.matches) {
		m.cursor = 0
	}
}

func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(styleTitle.Render("Choose a school"))
	if m.filter != "" {
		b.WriteString(" " + styleMuted.Render("filter: "+m.filter))
	}
	b.WriteString("\n\n")
	if len(m.matches) == 0 {
		b.WriteString(styleMuted.Render("  no schools match") + "\n")
	}
	for pos, idx := range m.matches {
		school := &m.schools[idx]
		line := fmt.Sprintf("%-40s %s", school.Name, styleMuted.Render(school.Summary()))
		if pos == m.cursor {
			b.WriteString(styleSelected.Render(selectionIndicator) + " " + styleSelected.Render(school.Name))
			b.WriteString(strings.Repeat(" ", max(1, 40-len(school.Name))))
			b.WriteString(styleMuted.Render(school.Summary()) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n" + styleMuted.Render("↑/↓ move · type to filter · enter select · esc cancel") + "\n")
	return b.String()
}

// PickSchool runs the picker and returns the chosen school, or
// ErrPickerCancelled if the user backed out.
func PickSchool(schools []subjective.School) (*subjective.School, error) {
	final, err := tea.NewProgram(NewPicker(schools)).Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(PickerModel)
	if !ok {
		return nil, ErrPickerCancelled
	}
	school, chosen := m.Choice()
	if !chosen {
		return nil, ErrPickerCancelled
	}
	return school, nil
}
