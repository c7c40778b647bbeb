package board

import (
	"fmt"
	"slices"

	"github.com/wifak939/taskboard/internal/models"
)

// AddTask appends a new task holding text to the end of the column. Text that
// is empty or only whitespace is ignored. The content is stored as given,
// without trimming. The returned id is empty when nothing was added.
func AddTask(b *models.Board, columnID models.ColumnID, text string, ids IDGenerator) (*models.Board, models.TaskID, error) {
	if models.IsBlank(text) {
		return b, "", nil
	}

	col, ok := b.Column(columnID)
	if !ok {
		return b, "", fmt.Errorf("add task to %q: %w", columnID, models.ErrColumnNotFound)
	}

	task := models.Task{ID: ids.NewID(b), Content: text}
	return b.WithItems(columnID, append(col.Items, task)), task.ID, nil
}

// RemoveTask drops every task with the given id from the column. A task that
// is not in the column leaves the board unchanged.
func RemoveTask(b *models.Board, columnID models.ColumnID, taskID models.TaskID) (*models.Board, error) {
	col, ok := b.Column(columnID)
	if !ok {
		return b, fmt.Errorf("remove task %q from %q: %w", taskID, columnID, models.ErrColumnNotFound)
	}

	if col.IndexOf(taskID) < 0 {
		return b, nil
	}

	items := slices.DeleteFunc(col.Items, func(t models.Task) bool { return t.ID == taskID })
	return b.WithItems(columnID, items), nil
}

// MoveTask takes a task out of the source column and appends it to the end of
// the target column. Moving within one column is a no-op, as is moving a
// task that is not in the source column.
func MoveTask(b *models.Board, from, to models.ColumnID, taskID models.TaskID) (*models.Board, error) {
	if from == to {
		return b, nil
	}

	src, ok := b.Column(from)
	if !ok {
		return b, fmt.Errorf("move task %q from %q: %w", taskID, from, models.ErrColumnNotFound)
	}
	dst, ok := b.Column(to)
	if !ok {
		return b, fmt.Errorf("move task %q to %q: %w", taskID, to, models.ErrColumnNotFound)
	}

	i := src.IndexOf(taskID)
	if i < 0 {
		return b, nil
	}
	task := src.Items[i]

	next := b.WithItems(from, slices.Delete(src.Items, i, i+1))
	return next.WithItems(to, append(dst.Items, task)), nil
}
