package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		Background: "#121212",

		// UI elements
		ColumnBorder:   "#FFFFFF",
		TaskBackground: "#1C1C1C",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",
		DraggingBg:     "#585858",
		DropTarget:     "#FFFFFF",

		ColumnAccents: []string{"#FFFFFF"},

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",
		Delete: "#FFFFFF",

		// Notifications
		InfoFg: "#FFFFFF",
		InfoBg: "#1C1C1C",
	}
}
