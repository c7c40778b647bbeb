// Package board implements the task mutations of the kanban board: adding,
// removing and moving tasks.
//
// Every operation is a pure function from a board snapshot to a new
// snapshot. Inputs are never modified. When an operation changes nothing it
// returns the board it was given, so callers can detect a change by pointer.
package board
