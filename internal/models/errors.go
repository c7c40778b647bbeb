package models

import "errors"

// Domain-specific errors for board construction and mutation
var (
	// ErrColumnNotFound indicates an operation referenced a column the board does not have
	ErrColumnNotFound = errors.New("column not found")

	// ErrEmptyBoard indicates a board with no columns
	ErrEmptyBoard = errors.New("board has no columns")

	// ErrDuplicateColumn indicates the same column id was given twice
	ErrDuplicateColumn = errors.New("duplicate column id")

	// ErrDuplicateTask indicates a task id appears more than once on the board
	ErrDuplicateTask = errors.New("duplicate task id")

	// ErrInvalidColumnID indicates an empty column id
	ErrInvalidColumnID = errors.New("column id must not be empty")
)
