package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		CardBorder:     "#585858",
		SelectedBorder: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		PriorityHigh:   "#FFFFFF",
		PriorityMedium: "#D0D0D0",
		PriorityLow:    "#8A8A8A",

		Chart: []string{"#FFFFFF", "#D0D0D0", "#A8A8A8", "#808080", "#585858"},

		SuccessFg: "#FFFFFF",
		InfoFg:    "#FFFFFF",
		WarningFg: "#FFFFFF",
		ErrorFg:   "#FFFFFF",
	}
}
