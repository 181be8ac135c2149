// Package styles holds the shared lipgloss palette and styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Success   = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red

	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	BgSecondary = lipgloss.Color("#1F2937")
	BgTertiary  = lipgloss.Color("#374151")
)

// Grid styles
var (
	// Header holds the column names row.
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		Background(BgTertiary)

	// HeaderEditing marks the header cell being edited.
	HeaderEditing = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary).
			Background(Success)

	// CursorNavigating marks the selected cell while navigating.
	CursorNavigating = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(Secondary)

	// CursorEditing marks the cell being edited.
	CursorEditing = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Success)

	// Gutter is the row-number column.
	Gutter = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Cell is a plain grid cell.
	Cell = lipgloss.NewStyle().
		Foreground(TextPrimary)

	// Separator draws the lines between columns.
	Separator = lipgloss.NewStyle().
			Foreground(BgTertiary)
)

// Chrome styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Background(BgSecondary)

	StatusMode = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary).
			Background(Primary).
			Padding(0, 1)

	StatusError = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary).
			Background(Error).
			Padding(0, 1)

	Toast = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Warning)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Dirty = lipgloss.NewStyle().
		Bold(true).
		Foreground(Warning)
)
