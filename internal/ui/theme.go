package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Grabbed, Paper, Tab, TabActive      lipgloss.Style

	BoxUnchecked, BoxChecked, Grip string
	Border                         lipgloss.Border
	BorderColor                    lipgloss.TerminalColor
	SymDone, SymUnchecked          string
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:      "classic",
		Title:     lipgloss.NewStyle().Bold(true),
		Muted:     lipgloss.NewStyle().Faint(true),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
		Grabbed:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Paper:     lipgloss.NewStyle().Foreground(lipgloss.Color("#1c2430")).Background(lipgloss.Color("#f3f5f7")).Padding(0, 1),
		Tab:       lipgloss.NewStyle().Padding(0, 1),
		TabActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true),

		BoxUnchecked: "☐", BoxChecked: "☑", Grip: "⠿",
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		SymDone:     "✔", SymUnchecked: "•",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		t := classic()
		t.Name = "neon"
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		t.Grabbed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.BoxUnchecked, t.BoxChecked = "◻", "◼"
		t.BorderColor = lipgloss.Color("13")
		current = t
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain,
			Selected: plain.Reverse(true), Grabbed: plain.Bold(true), Paper: plain.Padding(0, 1),
			Tab: plain.Padding(0, 1), TabActive: plain.Padding(0, 1).Reverse(true),
			BoxUnchecked: "[ ]", BoxChecked: "[x]", Grip: "::",
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			SymDone:     "x", SymUnchecked: "-",
		}
	default: // classic
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }

// Box returns the include checkbox for a flag.
func (t Theme) Box(checked bool) string {
	if checked {
		return t.BoxChecked
	}
	return t.BoxUnchecked
}
