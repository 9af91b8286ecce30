package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/huddle/internal/config/colors"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/stats"
)

const (
	// CardWidth is the outer width of a project or member card
	CardWidth = 40

	defaultMarkdownStyle = "dark"
)

// Renderer draws view models using the styles of one color scheme
type Renderer struct {
	scheme        colors.ColorScheme
	markdownStyle string

	card     lipgloss.Style
	selected lipgloss.Style
	title    lipgloss.Style
	subtle   lipgloss.Style
	normal   lipgloss.Style
	box      lipgloss.Style
}

// Option configures a Renderer
type Option func(*Renderer)

// WithMarkdownStyle selects the glamour standard style ("dark", "light", "notty")
func WithMarkdownStyle(name string) Option {
	return func(r *Renderer) {
		r.markdownStyle = name
	}
}

// New builds a renderer for scheme. Missing colors fall back to the preset.
func New(scheme colors.ColorScheme, opts ...Option) *Renderer {
	scheme.ApplyDefaults()

	r := &Renderer{
		scheme:        scheme,
		markdownStyle: defaultMarkdownStyle,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.CardBorder)).
		Padding(0, 1).
		Width(CardWidth)
	r.selected = r.card.BorderForeground(lipgloss.Color(scheme.SelectedBorder))
	r.title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))
	r.subtle = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle))
	r.normal = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Normal))
	r.box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(0, 1)

	return r
}

// Scheme returns the colors the renderer was built with
func (r *Renderer) Scheme() colors.ColorScheme {
	return r.scheme
}

// Title renders s in the title style
func (r *Renderer) Title(s string) string {
	return r.title.Render(s)
}

// Subtle renders s in the muted style
func (r *Renderer) Subtle(s string) string {
	return r.subtle.Render(s)
}

func (r *Renderer) priorityStyle(p models.Priority) lipgloss.Style {
	c := r.scheme.PriorityMedium
	switch p {
	case models.PriorityHigh:
		c = r.scheme.PriorityHigh
	case models.PriorityLow:
		c = r.scheme.PriorityLow
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c))
}

func (r *Renderer) memberStatusStyle(s models.MemberStatus) lipgloss.Style {
	switch s {
	case models.MemberActive:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(r.scheme.SuccessFg))
	case models.MemberVacation:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(r.scheme.WarningFg))
	default:
		return r.subtle
	}
}

func (r *Renderer) chartColor(i int) string {
	if len(r.scheme.Chart) == 0 {
		return r.scheme.Accent
	}
	return r.scheme.Chart[i%len(r.scheme.Chart)]
}

// ============================================================================
// CARDS
// ============================================================================

// ProjectCard draws a project card, highlighted when selected
func (r *Renderer) ProjectCard(c ProjectCard, selected bool) string {
	inner := CardWidth - 4

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		r.title.Width(inner-8).Render(truncate(c.Name, inner-8)),
		r.priorityStyle(c.Priority).Width(8).Align(lipgloss.Right).Render(string(c.Priority)),
	)

	progress := fmt.Sprintf("%s %3d%%", ProgressBar(c.Progress, inner-12), c.Progress)

	team := "No members assigned"
	if len(c.Members) > 0 {
		team = strings.Join(c.Members, ", ")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		r.subtle.Width(inner).Render(c.Description),
		"",
		r.normal.Render(progress),
		r.normal.Render(StatusLabel(c.Status)),
		r.subtle.Width(inner).Render("Team: "+team),
	)

	if selected {
		return r.selected.Render(body)
	}
	return r.card.Render(body)
}

// MemberCard draws a member card, highlighted when selected
func (r *Renderer) MemberCard(c MemberCard, selected bool) string {
	inner := CardWidth - 4

	avatar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(r.scheme.Accent)).
		Render("[" + c.Avatar + "]")
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		avatar, " ",
		r.title.Render(truncate(c.Name, inner-lipgloss.Width(avatar)-12)), " ",
		r.memberStatusStyle(c.Status).Render(string(c.Status)),
	)

	lines := []string{
		header,
		r.normal.Render(fmt.Sprintf("%s · %s", c.Role, c.Department)),
		r.subtle.Render(c.Email),
	}
	if c.Location != "" {
		lines = append(lines, r.subtle.Render(c.Location))
	}
	if len(c.Skills) > 0 {
		lines = append(lines, r.normal.Width(inner).Render("Skills: "+strings.Join(c.Skills, ", ")))
	}
	projects := "No projects"
	if len(c.Projects) > 0 {
		projects = strings.Join(c.Projects, ", ")
	}
	lines = append(lines, r.subtle.Width(inner).Render("Projects: "+projects))

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if selected {
		return r.selected.Render(body)
	}
	return r.card.Render(body)
}

// Grid lays cards out in rows that fit within width
func Grid(cards []string, width int) string {
	if len(cards) == 0 {
		return ""
	}
	perRow := max(1, width/(CardWidth+2))

	rows := make([]string, 0, len(cards)/perRow+1)
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// ============================================================================
// CHARTS AND PANELS
// ============================================================================

// Chart draws c as colored horizontal bars, each bar taking the next palette color
func (r *Renderer) Chart(c Chart, width int) string {
	lines := []string{r.title.Render(c.Title)}
	if len(c.Bars) == 0 {
		lines = append(lines, r.subtle.Render("No data"))
		return r.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	lw := labelWidth(c)
	largest := largestBar(c)
	total := c.Total()
	for i, bar := range c.Bars {
		fill := lipgloss.NewStyle().
			Foreground(lipgloss.Color(r.chartColor(i))).
			Render(strings.Repeat(barFull, barLength(bar.Value, largest, width)))
		share := stats.Percentage(float64(bar.Value), float64(total))
		lines = append(lines, fmt.Sprintf("%s  %s %s",
			r.normal.Render(fmt.Sprintf("%-*s", lw, bar.Label)),
			fill,
			r.subtle.Render(fmt.Sprintf("%d (%d%%)", bar.Value, share)),
		))
	}
	return r.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// StatsHeader draws the summary tiles shown above the dashboard
func (r *Renderer) StatsHeader(ps stats.ProjectStats, ms stats.MemberStats, teamScore int) string {
	tile := func(label, value string) string {
		return r.box.Render(lipgloss.JoinVertical(lipgloss.Left,
			r.subtle.Render(label),
			r.title.Render(value),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tile("Projects", fmt.Sprintf("%d", ps.Total)),
		tile("Completed", fmt.Sprintf("%d", ps.Completed)),
		tile("Avg progress", fmt.Sprintf("%d%%", ps.AverageProgress)),
		tile("Members", fmt.Sprintf("%d", ms.Total)),
		tile("Active", fmt.Sprintf("%d", ms.Active)),
		tile("Avg tenure", fmt.Sprintf("%d mo", ms.AverageTenureMonths)),
		tile("Team score", fmt.Sprintf("%d", teamScore)),
	)
}

// ProductivityPanel draws the result of the productivity calculator
func (r *Renderer) ProductivityPanel(res stats.ProductivityResult) string {
	if res.Tier == stats.TierInsufficientInput {
		return r.box.Render(lipgloss.JoinVertical(lipgloss.Left,
			r.title.Render("Productivity"),
			r.subtle.Render(res.Tier.Label()),
		))
	}

	tierColor := r.scheme.ErrorFg
	switch res.Tier {
	case stats.TierExcellent:
		tierColor = r.scheme.SuccessFg
	case stats.TierGood:
		tierColor = r.scheme.InfoFg
	case stats.TierAverage:
		tierColor = r.scheme.WarningFg
	}

	return r.box.Render(lipgloss.JoinVertical(lipgloss.Left,
		r.title.Render("Productivity"),
		r.normal.Render(fmt.Sprintf("Tasks per hour: %.2f", res.TasksPerHour)),
		r.normal.Render(fmt.Sprintf("Score: %.1f/10", res.Score)),
		r.normal.Render(fmt.Sprintf("Efficiency: %s %d%%", ProgressBar(res.Efficiency, 20), res.Efficiency)),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(tierColor)).Render(res.Tier.Label()),
	))
}

// ProjectDetail renders the markdown description of a project for the terminal
func (r *Renderer) ProjectDetail(c ProjectCard, width int) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.markdownStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := tr.Render(ProjectMarkdown(c))
	if err != nil {
		return "", fmt.Errorf("failed to render project detail: %w", err)
	}
	return out, nil
}

// truncate shortens s to at most n cells, marking the cut with an ellipsis
func truncate(s string, n int) string {
	if n <= 0 || lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > n {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
