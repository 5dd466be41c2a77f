package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#369EFF") // Subjective blue — accents
	colorMuted   = lipgloss.Color("#8C8C8C") // Gray — de-emphasized text
	colorWhite   = lipgloss.Color("#EEEEEE") // Off-white — primary text
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	styleTabActive = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)

	styleTabInactive = lipgloss.NewStyle().
				Foreground(colorMuted)

	styleDisabled = lipgloss.NewStyle().
			Foreground(colorMuted).
			Strikethrough(true)
)
