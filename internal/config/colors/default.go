package colors

// Default returns the default color scheme
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#667EEA",

		// UI elements
		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",

		// Text
		Title:  "#D75FD7",
		Subtle: "#6C6C6C",
		Normal: "#D0D0D0",

		// Priorities
		PriorityHigh:   "#F44336",
		PriorityMedium: "#FF9800",
		PriorityLow:    "#4CAF50",

		Chart: []string{
			"#4CAF50", "#2196F3", "#FF9800", "#9C27B0",
			"#607D8B", "#F44336", "#00BCD4", "#8BC34A",
		},

		// Notifications
		SuccessFg: "#4CAF50",
		InfoFg:    "#2196F3",
		WarningFg: "#FF9800",
		ErrorFg:   "#F44336",
	}
}
