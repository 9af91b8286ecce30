package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/huddle/internal/render"
)

// View renders the current state of the dashboard.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = m.render()
	return view
}

// render draws the whole screen as a string
func (m Model) render() string {
	if m.mode == formMode && m.forms != nil && m.forms.form != nil {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.viewForm(),
		)
	}
	if m.mode == confirmMode && m.pending != nil {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.viewConfirm(),
		)
	}

	sections := []string{
		m.viewHeader(),
		m.viewTabs(),
		m.viewBody(),
	}
	if n := renderNotifications(m.notifications.All(), m.renderer.Scheme()); n != "" {
		sections = append(sections, n)
	}
	sections = append(sections, m.viewHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	title := m.styles.header.Render("huddle")
	clock := m.styles.clock.Render(m.now.Format("Mon 02 Jan 2006 15:04:05"))
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(clock), 1)
	return title + strings.Repeat(" ", gap) + clock
}

// viewTabs renders the tab bar
//
// Layout:
//
//	╭──────────╮ ╭──────╮ ╭───────╮
//	│ Projects │ │ Team │ │ Stats │──────────────
func (m Model) viewTabs() string {
	rendered := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.tab {
			rendered = append(rendered, m.styles.activeTab.Render(name))
		} else {
			rendered = append(rendered, m.styles.tab.Render(name))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	gapWidth := max(m.width-lipgloss.Width(row)-2, 0)
	gap := m.styles.tabGap.Render(strings.Repeat(" ", gapWidth))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}

func (m Model) viewBody() string {
	switch m.tab {
	case teamTab:
		return m.viewTeam()
	case statsTab:
		return m.viewStats()
	default:
		return m.viewProjects()
	}
}

func (m Model) viewProjects() string {
	if len(m.dashboard.Projects) == 0 {
		return m.renderer.Subtle("No projects yet. Press " + m.keys.New.Help().Key + " to create one.")
	}
	cards := make([]string, 0, len(m.dashboard.Projects))
	for i, c := range render.ProjectCards(m.dashboard.Projects, m.dashboard.Members) {
		cards = append(cards, m.renderer.ProjectCard(c, i == m.selectedProject))
	}
	return render.Grid(cards, m.width)
}

func (m Model) viewTeam() string {
	var parts []string
	if m.mode == searchMode || m.search.Value() != "" {
		parts = append(parts, m.styles.search.Render(m.search.View()))
	}

	if len(m.members) == 0 {
		parts = append(parts, m.renderer.Subtle("No members match."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	cards := make([]string, 0, len(m.members))
	for i, c := range render.MemberCards(m.members, m.dashboard.Projects) {
		cards = append(cards, m.renderer.MemberCard(c, i == m.selectedMember))
	}
	parts = append(parts, render.Grid(cards, m.width))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewStats() string {
	d := m.dashboard
	chartWidth := 20
	charts := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderer.Chart(render.StatusChart(d.ProjectStats), chartWidth),
		m.renderer.Chart(render.RoleChart(d.MemberStats), chartWidth),
		m.renderer.Chart(render.DepartmentChart(d.MemberStats), chartWidth),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.StatsHeader(d.ProjectStats, d.MemberStats, d.TeamScore),
		charts,
	)
}

func (m Model) viewConfirm() string {
	kind := "project"
	if m.pending.kind != "" {
		kind = string(m.pending.kind)
	}
	return m.styles.confirm.Render(fmt.Sprintf(
		"Delete %s '%s'?\n\n%s",
		kind, m.pending.name,
		m.helpLine([]key.Binding{m.keys.Confirm, m.keys.Cancel}),
	))
}

func (m Model) viewForm() string {
	var parts []string
	if n := renderNotifications(m.notifications.All(), m.renderer.Scheme()); n != "" {
		parts = append(parts, n)
	}
	parts = append(parts,
		m.forms.form.View(),
		m.helpLine([]key.Binding{m.keys.SaveForm, m.keys.CloseForm}),
	)
	return m.styles.form.Width(m.formWidth() + 4).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewHelp() string {
	bindings := m.keys.shortHelp()
	if m.showHelp {
		bindings = m.keys.fullHelp()
	}
	return m.helpLine(bindings)
}

func (m Model) helpLine(bindings []key.Binding) string {
	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		items = append(items, m.styles.helpKey.Render(h.Key)+" "+m.styles.help.Render(h.Desc))
	}
	return strings.Join(items, m.styles.help.Render(" • "))
}
