package tui

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/notify"
	"github.com/thenoetrevino/huddle/internal/services/confirm"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.notifications.Expire(NotificationTTL)
		return m, tick()

	case refreshMsg:
		m.reload()
		// Continue listening for more events
		return m, m.listen()

	case loadedMsg:
		text := "Dashboard loaded"
		if m.app.LoadReport.UsedSeed() {
			text = "Sample data loaded"
		}
		m.notifications.Notify(notify.LevelInfo, text)
		return m, nil

	}

	if m.mode == formMode {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch m.mode {
		case searchMode:
			return m.handleSearchMode(msg)
		case confirmMode:
			return m.handleConfirmMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	return m, nil
}

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tab(len(tabNames))
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + tab(len(tabNames)) - 1) % tab(len(tabNames))
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Increase):
		return m.handleProgress(models.ProgressStep)
	case key.Matches(msg, m.keys.Decrease):
		return m.handleProgress(-models.ProgressStep)
	case key.Matches(msg, m.keys.New):
		return m.handleNew()
	case key.Matches(msg, m.keys.Edit):
		return m.handleEdit()
	case key.Matches(msg, m.keys.Assign):
		return m.handleAssign()
	case key.Matches(msg, m.keys.Delete):
		return m.handleDelete()
	case key.Matches(msg, m.keys.Search):
		return m.handleEnterSearch()
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	switch m.tab {
	case projectsTab:
		m.selectedProject = clampIndex(m.selectedProject+delta, len(m.dashboard.Projects))
	case teamTab:
		m.selectedMember = clampIndex(m.selectedMember+delta, len(m.members))
	}
}

// handleProgress moves the selected project's progress by delta percent
func (m Model) handleProgress(delta int) (tea.Model, tea.Cmd) {
	if m.tab != projectsTab {
		return m, nil
	}
	p, ok := m.currentProject()
	if !ok {
		return m, nil
	}

	updated, err := m.app.ProjectService.UpdateProgress(m.ctx, p.ID, delta)
	if err != nil {
		m.notifications.Notify(notify.LevelError, err.Error())
		return m, nil
	}
	m.notifications.Notify(notify.LevelSuccess,
		fmt.Sprintf("%s is now at %d%%", updated.Name, updated.Progress))
	m.reload()
	return m, nil
}

// ============================================================================
// DELETE CONFIRMATION HANDLERS
// ============================================================================

// handleDelete asks for confirmation before deleting the selected card
func (m Model) handleDelete() (tea.Model, tea.Cmd) {
	switch m.tab {
	case projectsTab:
		p, ok := m.currentProject()
		if !ok {
			return m, nil
		}
		token, err := m.app.ProjectService.RequestDelete(m.ctx, p.ID)
		if err != nil {
			m.notifications.Notify(notify.LevelError, err.Error())
			return m, nil
		}
		m.pending = &pendingDelete{kind: confirm.KindProject, token: token, name: p.Name}

	case teamTab:
		mem, ok := m.currentMember()
		if !ok {
			return m, nil
		}
		token, err := m.app.MemberService.RequestDelete(m.ctx, mem.ID)
		if err != nil {
			m.notifications.Notify(notify.LevelError, err.Error())
			return m, nil
		}
		m.pending = &pendingDelete{kind: confirm.KindMember, token: token, name: mem.Name}

	default:
		return m, nil
	}

	m.mode = confirmMode
	return m, nil
}

// handleConfirmMode answers the pending delete
func (m Model) handleConfirmMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.confirmDelete()
	case key.Matches(msg, m.keys.Cancel):
		return m.cancelDelete()
	}
	return m, nil
}

func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	pending := m.pending
	m.pending = nil
	m.mode = normalMode
	if pending == nil {
		return m, nil
	}

	var err error
	switch pending.kind {
	case confirm.KindProject:
		_, err = m.app.ProjectService.ConfirmDelete(m.ctx, pending.token)
	case confirm.KindMember:
		_, err = m.app.MemberService.ConfirmDelete(m.ctx, pending.token)
	}
	if err != nil {
		m.notifications.Notify(notify.LevelError, err.Error())
		return m, nil
	}

	m.notifications.Notify(notify.LevelSuccess, fmt.Sprintf("%s deleted", pending.name))
	m.reload()
	return m, nil
}

func (m Model) cancelDelete() (tea.Model, tea.Cmd) {
	if m.pending != nil {
		switch m.pending.kind {
		case confirm.KindProject:
			m.app.ProjectService.CancelDelete(m.pending.token)
		case confirm.KindMember:
			m.app.MemberService.CancelDelete(m.pending.token)
		}
	}
	m.pending = nil
	m.mode = normalMode
	return m, nil
}

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// handleEnterSearch focuses the team filter, switching to the team tab
func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.tab = teamTab
	m.mode = searchMode
	return m, m.search.Focus()
}

// handleSearchMode filters the team as the query is typed
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.search.Blur()
		m.mode = normalMode
		return m, nil
	case msg.String() == "esc":
		m.search.Blur()
		m.search.SetValue("")
		m.mode = normalMode
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.selectedMember = 0
	m.reload()
	return m, cmd
}
