package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	DeleteTask string `yaml:"delete_task"`

	// Drag gesture
	GrabTask string `yaml:"grab_task"`
	DropTask string `yaml:"drop_task"`
	Cancel   string `yaml:"cancel"`

	// Input row
	CycleTarget string `yaml:"cycle_target"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:    "a",
		DeleteTask: "d",

		// Drag gesture
		GrabTask: "m",
		DropTask: "enter",
		Cancel:   "esc",

		// Input row
		CycleTarget: "tab",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.AddTask, defaults.AddTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.GrabTask, defaults.GrabTask)
	fill(&k.DropTask, defaults.DropTask)
	fill(&k.Cancel, defaults.Cancel)
	fill(&k.CycleTarget, defaults.CycleTarget)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
