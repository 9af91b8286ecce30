package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/huddle/internal/config/colors"
)

var (
	// Tab borders - active tab has no bottom border to "open" into content
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}
)

// styles are the dashboard chrome styles derived from a color scheme
type styles struct {
	tab       lipgloss.Style
	activeTab lipgloss.Style
	tabGap    lipgloss.Style

	header  lipgloss.Style
	clock   lipgloss.Style
	help    lipgloss.Style
	helpKey lipgloss.Style
	search  lipgloss.Style
	confirm lipgloss.Style
	form    lipgloss.Style
}

func newStyles(scheme colors.ColorScheme) styles {
	highlight := lipgloss.Color(scheme.Accent)

	tab := lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(highlight).
		Padding(0, 1)

	return styles{
		tab:       tab,
		activeTab: tab.Border(activeTabBorder, true).Bold(true),
		tabGap: tab.
			BorderTop(false).
			BorderLeft(false).
			BorderRight(false),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)),
		clock: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)),
		help:  lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)),
		helpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)),
		search: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(highlight).
			Padding(0, 1),
		confirm: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.ErrorFg)).
			Padding(1, 2).
			Width(64),
		form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1, 2),
	}
}
