// Package tui is the interactive dashboard: project cards, team cards and
// statistics, refreshed whenever the services report a change.
package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/huddle/internal/app"
	"github.com/thenoetrevino/huddle/internal/config"
	"github.com/thenoetrevino/huddle/internal/events"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/notify"
	"github.com/thenoetrevino/huddle/internal/render"
	"github.com/thenoetrevino/huddle/internal/services/confirm"
	"github.com/thenoetrevino/huddle/internal/services/member"
)

type mode int

const (
	normalMode mode = iota
	searchMode
	confirmMode
	formMode
)

type tab int

const (
	projectsTab tab = iota
	teamTab
	statsTab
)

var tabNames = []string{"Projects", "Team", "Stats"}

// pendingDelete is the delete awaiting a y/n answer
type pendingDelete struct {
	kind  confirm.Kind
	token confirm.Token
	name  string
}

// Messages
type (
	tickMsg    time.Time
	refreshMsg struct{ Event events.Event }
	loadedMsg  struct{}
)

// Model represents the application state for the TUI
type Model struct {
	ctx context.Context
	app *app.App

	renderer      *render.Renderer
	styles        styles
	keys          keyMap
	notifications *notify.Queue
	eventChan     <-chan events.Event

	mode     mode
	tab      tab
	showHelp bool
	search   textinput.Model
	pending  *pendingDelete
	forms    *formState

	selectedProject int
	selectedMember  int
	width           int
	height          int
	now             time.Time

	dashboard app.Dashboard
	// members is the team list after the search filter
	members []models.Member
}

// New creates the dashboard model. queue must be the notifier the app's
// services report to so save warnings show up on screen.
func New(ctx context.Context, a *app.App, cfg *config.Config, queue *notify.Queue) Model {
	search := textinput.New()
	search.Placeholder = "name, email or skill"
	search.Prompt = "/ "

	if queue == nil {
		queue = notify.NewQueue(notify.DefaultCapacity)
	}

	m := Model{
		ctx:           ctx,
		app:           a,
		renderer:      render.New(cfg.ColorScheme),
		styles:        newStyles(cfg.ColorScheme),
		keys:          newKeyMap(cfg.KeyMappings),
		notifications: queue,
		search:        search,
		now:           a.Now(),
	}

	eventChan, err := a.Events().Listen(ctx)
	if err != nil {
		slog.Warn("dashboard will not refresh on changes", "error", err)
	} else {
		m.eventChan = eventChan
	}

	m.reload()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.listen(), loaded())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func loaded() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return loadedMsg{}
	})
}

// listen waits for the next change event and turns it into a refresh
func (m Model) listen() tea.Cmd {
	if m.eventChan == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case event, ok := <-m.eventChan:
			if !ok {
				return nil
			}
			return refreshMsg{Event: event}
		case <-m.ctx.Done():
			return nil
		}
	}
}

// reload reads the dashboard again and keeps the selections in range
func (m *Model) reload() {
	d, err := m.app.Dashboard(m.ctx)
	if err != nil {
		slog.Error("failed to load dashboard", "error", err)
		m.notifications.Notify(notify.LevelError, err.Error())
		return
	}
	m.dashboard = d

	m.members = d.Members
	if q := m.search.Value(); q != "" {
		filtered, err := m.app.MemberService.ListMembers(m.ctx, member.Filter{Query: q})
		if err != nil {
			m.notifications.Notify(notify.LevelError, err.Error())
		} else {
			m.members = filtered
		}
	}

	m.selectedProject = clampIndex(m.selectedProject, len(m.dashboard.Projects))
	m.selectedMember = clampIndex(m.selectedMember, len(m.members))
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return max(0, min(i, n-1))
}

// currentProject returns the selected project, or false when there is none
func (m Model) currentProject() (models.Project, bool) {
	if len(m.dashboard.Projects) == 0 {
		return models.Project{}, false
	}
	return m.dashboard.Projects[m.selectedProject], true
}

// currentMember returns the selected member, or false when there is none
func (m Model) currentMember() (models.Member, bool) {
	if len(m.members) == 0 {
		return models.Member{}, false
	}
	return m.members[m.selectedMember], true
}
