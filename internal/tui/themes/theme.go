// Package themes defines the visual styles for the TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	SearchBox     lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	StatusUnknown lipgloss.Style
	ErrorBanner   lipgloss.Style
	Accent        lipgloss.Style
	MutedText     lipgloss.Style
	Primary       lipgloss.Color
	Success       lipgloss.Color
	Error         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Muted         lipgloss.Color
}

// Default mirrors the palette of the original app: Flip orange for accents
// and pending transfers, green for settled ones.
var Default = Theme{
	Primary:    lipgloss.Color("#f46345"),
	Success:    lipgloss.Color("#54b987"),
	Error:      lipgloss.Color("#f46345"),
	Border:     lipgloss.Color("#404040"),
	Foreground: lipgloss.Color("#fafafa"),
	Muted:      lipgloss.Color("#737373"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#f46345")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Box: lipgloss.NewStyle().
		Padding(0, 1),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),
	SearchBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#f46345")).
		Padding(0, 1),
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#54b987")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f46345")).
		Bold(true),
	StatusUnknown: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),
	ErrorBanner: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f46345")).
		Bold(true),
	Accent: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f46345")).
		Bold(true),
	MutedText: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
}

// Mono is a colorless theme for terminals without color support.
var Mono = Theme{
	Primary:    lipgloss.Color("15"),
	Success:    lipgloss.Color("15"),
	Error:      lipgloss.Color("15"),
	Border:     lipgloss.Color("8"),
	Foreground: lipgloss.Color("15"),
	Muted:      lipgloss.Color("8"),

	Title:    lipgloss.NewStyle().Bold(true),
	Subtitle: lipgloss.NewStyle().Faint(true),
	Normal:   lipgloss.NewStyle(),
	Bold:     lipgloss.NewStyle().Bold(true),
	Selected: lipgloss.NewStyle().Reverse(true),
	Box:      lipgloss.NewStyle().Padding(0, 1),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(1, 2),
	SearchBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1),
	StatusSuccess: lipgloss.NewStyle().Bold(true),
	StatusPending: lipgloss.NewStyle().Underline(true),
	StatusUnknown: lipgloss.NewStyle().Faint(true),
	ErrorBanner:   lipgloss.NewStyle().Bold(true).Reverse(true),
	Accent:        lipgloss.NewStyle().Bold(true),
	MutedText:     lipgloss.NewStyle().Faint(true),
}

// ByName resolves a configured theme name, defaulting to Default.
func ByName(name string) Theme {
	switch name {
	case "mono":
		return Mono
	default:
		return Default
	}
}
