package models

import "slices"

// ColumnID is the key a column is stored under (e.g. "todo", "encour").
// The set of column ids is fixed when the board is built.
type ColumnID string

// Column is a named, ordered bucket of tasks. Items are displayed top to
// bottom, so appending puts a task at the bottom.
type Column struct {
	Name  string `json:"name"`
	Items []Task `json:"items"`
}

// clone returns a copy whose Items can be modified without touching c
func (c Column) clone() Column {
	return Column{Name: c.Name, Items: slices.Clone(c.Items)}
}

// IndexOf returns the position of the task with the given id, or -1
func (c Column) IndexOf(id TaskID) int {
	return slices.IndexFunc(c.Items, func(t Task) bool { return t.ID == id })
}

// Entry pairs a column with its id, used to build boards in display order
type Entry struct {
	ID     ColumnID
	Column Column
}
