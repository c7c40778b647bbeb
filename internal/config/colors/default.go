package colors

// Default returns the default color scheme. Column headers use the blue,
// yellow and green of the classic board.
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		Background: "#1C1C1C",

		// UI elements
		ColumnBorder:   "#5F87D7",
		TaskBackground: "#6C757D",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",
		DraggingBg:     "#875F00",
		DropTarget:     "#FFD700",

		ColumnAccents: []string{"#0D6EFD", "#FFC107", "#198754"},

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",
		Delete: "#DC3545",

		// Notifications
		InfoFg: "#00AFFF",
		InfoBg: "#00005F",
	}
}
