package config

// KeyMappings defines all configurable key bindings of the dashboard
type KeyMappings struct {
	// Projects
	IncreaseProgress string `yaml:"increase_progress"`
	DecreaseProgress string `yaml:"decrease_progress"`

	// Projects and team
	AssignMembers string `yaml:"assign_members"`

	// Shared
	New      string `yaml:"new"`
	Edit     string `yaml:"edit"`
	Delete   string `yaml:"delete"`
	Search   string `yaml:"search"`
	SaveForm string `yaml:"save_form"`

	// Navigation
	NextTab string `yaml:"next_tab"`
	PrevTab string `yaml:"prev_tab"`
	Up      string `yaml:"up"`
	Down    string `yaml:"down"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		IncreaseProgress: "+",
		DecreaseProgress: "-",
		AssignMembers:    "a",
		New:              "n",
		Edit:             "e",
		Delete:           "d",
		Search:           "/",
		SaveForm:         "ctrl+s",
		NextTab:          "tab",
		PrevTab:          "shift+tab",
		Up:               "k",
		Down:             "j",
		ShowHelp:         "?",
		Quit:             "q",
	}
}

// applyDefaults fills in any empty key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.IncreaseProgress == "" {
		k.IncreaseProgress = defaults.IncreaseProgress
	}
	if k.DecreaseProgress == "" {
		k.DecreaseProgress = defaults.DecreaseProgress
	}
	if k.AssignMembers == "" {
		k.AssignMembers = defaults.AssignMembers
	}
	if k.New == "" {
		k.New = defaults.New
	}
	if k.Edit == "" {
		k.Edit = defaults.Edit
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.Delete == "" {
		k.Delete = defaults.Delete
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.NextTab == "" {
		k.NextTab = defaults.NextTab
	}
	if k.PrevTab == "" {
		k.PrevTab = defaults.PrevTab
	}
	if k.Up == "" {
		k.Up = defaults.Up
	}
	if k.Down == "" {
		k.Down = defaults.Down
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
