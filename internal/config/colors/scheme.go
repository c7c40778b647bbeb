package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the header and the input row)
	Accent string `yaml:"accent"`

	Background string `yaml:"background"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBackground string `yaml:"task_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	DraggingBg     string `yaml:"dragging_bg"` // Card held by a drag gesture
	DropTarget     string `yaml:"drop_target"` // Border of the column a drag hovers

	// ColumnAccents color each column header, cycling when there are more
	// columns than entries
	ColumnAccents []string `yaml:"column_accents"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
	Delete string `yaml:"delete"`

	// Notification colors (foreground/background pair)
	InfoFg string `yaml:"info_fg"`
	InfoBg string `yaml:"info_bg"`
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
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.fill(preset)
}

// MergeFrom overrides colors with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Background, other.Background)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.TaskBackground, other.TaskBackground)
	merge(&c.SelectedBorder, other.SelectedBorder)
	merge(&c.SelectedBg, other.SelectedBg)
	merge(&c.DraggingBg, other.DraggingBg)
	merge(&c.DropTarget, other.DropTarget)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.Delete, other.Delete)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	if len(other.ColumnAccents) > 0 {
		c.ColumnAccents = append([]string(nil), other.ColumnAccents...)
	}
}

// ColumnAccent returns the header color for the column at index i
func (c *ColorScheme) ColumnAccent(i int) string {
	if len(c.ColumnAccents) == 0 {
		return c.Accent
	}
	return c.ColumnAccents[i%len(c.ColumnAccents)]
}

// fill copies preset values into every empty field
func (c *ColorScheme) fill(preset *ColorScheme) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Background, preset.Background)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.TaskBackground, preset.TaskBackground)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.DraggingBg, preset.DraggingBg)
	fill(&c.DropTarget, preset.DropTarget)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Delete, preset.Delete)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	if len(c.ColumnAccents) == 0 {
		c.ColumnAccents = append([]string(nil), preset.ColumnAccents...)
	}
}
