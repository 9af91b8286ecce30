package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// UI element colors
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Priority colors
	PriorityHigh   string `yaml:"priority_high"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityLow    string `yaml:"priority_low"`

	// Chart palette, cycled per bar
	Chart []string `yaml:"chart"`

	// Notification colors
	SuccessFg string `yaml:"success_fg"`
	InfoFg    string `yaml:"info_fg"`
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.CardBorder, preset.CardBorder)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.PriorityHigh, preset.PriorityHigh)
	fill(&c.PriorityMedium, preset.PriorityMedium)
	fill(&c.PriorityLow, preset.PriorityLow)
	fill(&c.SuccessFg, preset.SuccessFg)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.ErrorFg, preset.ErrorFg)
	if len(c.Chart) == 0 {
		c.Chart = append([]string{}, preset.Chart...)
	}
}
