package models

import "strings"

// TaskID identifies a task. Ids are unique across the whole board, not just
// within a column.
type TaskID string

// Task is a single card on the board
type Task struct {
	ID      TaskID `json:"id"`
	Content string `json:"content"`
}

// IsBlank reports whether text holds nothing but whitespace
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
