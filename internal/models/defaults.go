package models

// Default column ids seeded on first run
const (
	ColumnTodo       ColumnID = "todo"
	ColumnInProgress ColumnID = "encour"
	ColumnDone       ColumnID = "done"
)

// DefaultBoard returns the board used when nothing usable has been persisted
func DefaultBoard() *Board {
	b, err := NewBoard(
		Entry{ID: ColumnTodo, Column: Column{
			Name: "To Do",
			Items: []Task{
				{ID: "1", Content: "task 1 to do"},
				{ID: "2", Content: "task 2 to do"},
			},
		}},
		Entry{ID: ColumnInProgress, Column: Column{
			Name:  "En cours",
			Items: []Task{{ID: "3", Content: "task en cour"}},
		}},
		Entry{ID: ColumnDone, Column: Column{
			Name:  "Done",
			Items: []Task{{ID: "4", Content: "Done task"}},
		}},
	)
	if err != nil {
		// the seed above is static
		panic(err)
	}
	return b
}
