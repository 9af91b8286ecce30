package render

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	barFull  = "█"
	barEmpty = "░"
)

// ProgressBar draws progress as a fixed width bar of block characters
func ProgressBar(progress, width int) string {
	if width <= 0 {
		return ""
	}
	progress = max(0, min(100, progress))
	filled := progress * width / 100
	return strings.Repeat(barFull, filled) + strings.Repeat(barEmpty, width-filled)
}

// barLength scales value against the largest bar. A non-zero value always
// gets at least one block so it stays visible.
func barLength(value, largest, width int) int {
	if value <= 0 || largest <= 0 {
		return 0
	}
	return max(1, value*width/largest)
}

func largestBar(c Chart) int {
	largest := 0
	for _, b := range c.Bars {
		largest = max(largest, b.Value)
	}
	return largest
}

func labelWidth(c Chart) int {
	w := 0
	for _, b := range c.Bars {
		w = max(w, utf8.RuneCountInString(b.Label))
	}
	return w
}

// ChartText draws c without colors, one bar per line
func ChartText(c Chart, width int) string {
	var b strings.Builder
	b.WriteString(c.Title)
	b.WriteString("\n")

	if len(c.Bars) == 0 {
		b.WriteString("No data\n")
		return b.String()
	}

	lw := labelWidth(c)
	largest := largestBar(c)
	for _, bar := range c.Bars {
		fmt.Fprintf(&b, "%-*s  %s %d\n", lw, bar.Label,
			strings.Repeat(barFull, barLength(bar.Value, largest, width)), bar.Value)
	}
	return b.String()
}

// ProjectMarkdown describes a project as a markdown document
func ProjectMarkdown(card ProjectCard) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", card.Name)
	if card.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", card.Description)
	}

	b.WriteString("| Field | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| ID | %d |\n", card.ID)
	fmt.Fprintf(&b, "| Status | %s |\n", StatusLabel(card.Status))
	fmt.Fprintf(&b, "| Priority | %s |\n", card.Priority)
	fmt.Fprintf(&b, "| Progress | %d%% |\n", card.Progress)
	if !card.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "| Updated | %s |\n", card.UpdatedAt.Format("2006-01-02"))
	}

	b.WriteString("\n## Team\n\n")
	if len(card.Members) == 0 {
		b.WriteString("_No members assigned._\n")
		return b.String()
	}
	for _, name := range card.Members {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	return b.String()
}
