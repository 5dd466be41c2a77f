package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/subjectivelabs/sj/internal/subjective"
)

func testSchools() []subjective.School {
	return []subjective.School{
		{Name: "Alpha High", Location: "Sydney"},
		{Name: "Beta College", Location: "Melbourne"},
		{Name: "Gamma Grammar", Location: "Brisbane"},
	}
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runePress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPickerCursorMovement(t *testing.T) {
	t.Parallel()
	m := NewPicker(testSchools())
	next, _ := m.Update(keyPress(tea.KeyDown))
	m = next.(PickerModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.cursor)
	}
	next, _ = m.Update(keyPress(tea.KeyUp))
	m = next.(PickerModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.cursor)
	}
	// Cursor stays in range at the edges.
	next, _ = m.Update(keyPress(tea.KeyUp))
	m = next.(PickerModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d at top edge, want 0", m.cursor)
	}
}

func TestPickerSelect(t *testing.T) {
	t.Parallel()
	m := NewPicker(testSchools())
	next, _ := m.Update(keyPress(tea.KeyDown))
	m = next.(PickerModel)
	next, cmd := m.Update(keyPress(tea.KeyEnter))
	m = next.(PickerModel)
	if cmd == nil {
		t.Fatal("enter should quit the program")
	}
	school, ok := m.Choice()
	if !ok {
		t.Fatal("no choice recorded")
	}
	if school.Name != "Beta College" {
		t.Errorf("chose %q, want Beta College", school.Name)
	}
}

func TestPickerFilter(t *testing.T) {
	t.Parallel()
	m := NewPicker(testSchools())
	for _, r := range "gamma" {
		next, _ := m.Update(runePress(r))
		m = next.(PickerModel)
	}
	if len(m.matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(m.matches))
	}
	next, _ := m.Update(keyPress(tea.KeyEnter))
	m = next.(PickerModel)
	school, ok := m.Choice()
	if !ok || school.Name != "Gamma Grammar" {
		t.Errorf("filtered selection = %v, want Gamma Grammar", school)
	}
}

func TestPickerFilterNoMatches(t *testing.T) {
	t.Parallel()
	m := NewPicker(testSchools())
	for _, r := range "zzz" {
		next, _ := m.Update(runePress(r))
		m = next.(PickerModel)
	}
	if len(m.matches) != 0 {
		t.Fatalf("matches = %d, want 0", len(m.matches))
	}
	// Enter with no matches must not record a choice.
	next, _ := m.Update(keyPress(tea.KeyEnter))
	m = next.(PickerModel)
	if _, ok := m.Choice(); ok {
		t.Error("choice recorded with no matches")
	}
	// Backspace restores the full list.
	for range "zzz" {
		next, _ = m.Update(keyPress(tea.KeyBackspace))
		m = next.(PickerModel)
	}
	if len(m.matches) != 3 {
		t.Errorf("matches = %d after clearing filter, want 3", len(m.matches))
	}
}

func TestPickerCancel(t *testing.T) {
	t.Parallel()
	m := NewPicker(testSchools())
	next, cmd := m.Update(keyPress(tea.KeyEsc))
	m = next.(PickerModel)
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := m.Choice(); ok {
		t.Error("cancelled picker recorded a choice")
	}
}

func TestPickerView(t *testing.T) {
	t.Parallel()
	m := NewPicker(testSchools())
	view := m.View()
	for _, want := range []string{"Choose a school", "Alpha High", "Beta College"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
