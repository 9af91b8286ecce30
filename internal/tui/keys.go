package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/huddle/internal/config"
)

// keyMap holds the dashboard bindings built from the configured key mappings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Increase key.Binding
	Decrease key.Binding
	New      key.Binding
	Edit     key.Binding
	Assign   key.Binding
	Delete   key.Binding
	Search   key.Binding
	Help     key.Binding
	Quit     key.Binding

	// Dialog and search bindings are fixed
	Confirm key.Binding
	Cancel  key.Binding
	Accept  key.Binding

	// Form bindings
	SaveForm  key.Binding
	CloseForm key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys(km.Up, "up"),
			key.WithHelp(km.Up+"/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(km.Down, "down"),
			key.WithHelp(km.Down+"/↓", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys(km.NextTab),
			key.WithHelp(km.NextTab, "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys(km.PrevTab),
			key.WithHelp(km.PrevTab, "prev tab"),
		),
		Increase: key.NewBinding(
			key.WithKeys(km.IncreaseProgress),
			key.WithHelp(km.IncreaseProgress, "progress +10%"),
		),
		Decrease: key.NewBinding(
			key.WithKeys(km.DecreaseProgress),
			key.WithHelp(km.DecreaseProgress, "progress -10%"),
		),
		New: key.NewBinding(
			key.WithKeys(km.New),
			key.WithHelp(km.New, "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys(km.Edit),
			key.WithHelp(km.Edit, "edit"),
		),
		Assign: key.NewBinding(
			key.WithKeys(km.AssignMembers),
			key.WithHelp(km.AssignMembers, "assign members"),
		),
		Delete: key.NewBinding(
			key.WithKeys(km.Delete),
			key.WithHelp(km.Delete, "delete"),
		),
		Search: key.NewBinding(
			key.WithKeys(km.Search),
			key.WithHelp(km.Search, "search team"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "no"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		SaveForm: key.NewBinding(
			key.WithKeys(km.SaveForm),
			key.WithHelp(km.SaveForm, "save"),
		),
		CloseForm: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// shortHelp lists the bindings always shown in the footer
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Help, k.Quit}
}

// fullHelp lists every binding of normal mode
func (k keyMap) fullHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.NextTab, k.PrevTab,
		k.Increase, k.Decrease, k.New, k.Edit, k.Assign, k.Delete, k.Search,
		k.Help, k.Quit,
	}
}
