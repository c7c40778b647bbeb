package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Board is the full set of columns and their tasks. Columns keep the order
// they were created in, which is also their display order.
//
// A Board is never modified after construction. Mutations build a new Board
// that shares every untouched column with the old one, so two snapshots can
// be compared by pointer to detect a change.
type Board struct {
	order   []ColumnID
	columns map[ColumnID]Column
}

// NewBoard builds a board from entries in display order. It rejects empty
// boards, duplicate or empty column ids, and task ids used more than once
// anywhere on the board.
func NewBoard(entries ...Entry) (*Board, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyBoard
	}

	b := &Board{
		order:   make([]ColumnID, 0, len(entries)),
		columns: make(map[ColumnID]Column, len(entries)),
	}
	seen := make(map[TaskID]ColumnID)

	for _, e := range entries {
		if e.ID == "" {
			return nil, ErrInvalidColumnID
		}
		if _, dup := b.columns[e.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, e.ID)
		}
		for _, t := range e.Column.Items {
			if other, dup := seen[t.ID]; dup {
				return nil, fmt.Errorf("%w: %q in %q and %q", ErrDuplicateTask, t.ID, other, e.ID)
			}
			seen[t.ID] = e.ID
		}
		b.order = append(b.order, e.ID)
		b.columns[e.ID] = e.Column.clone()
	}

	return b, nil
}

// ColumnIDs returns the column ids in display order
func (b *Board) ColumnIDs() []ColumnID {
	return slices.Clone(b.order)
}

// Column returns a copy of the column stored under id
func (b *Board) Column(id ColumnID) (Column, bool) {
	col, ok := b.columns[id]
	if !ok {
		return Column{}, false
	}
	return col.clone(), true
}

// Has reports whether the board has a column with the given id
func (b *Board) Has(id ColumnID) bool {
	_, ok := b.columns[id]
	return ok
}

// Len returns the number of columns
func (b *Board) Len() int {
	return len(b.order)
}

// TotalTasks counts tasks across every column
func (b *Board) TotalTasks() int {
	total := 0
	for _, col := range b.columns {
		total += len(col.Items)
	}
	return total
}

// FindTask locates a task anywhere on the board
func (b *Board) FindTask(id TaskID) (ColumnID, Task, bool) {
	for _, colID := range b.order {
		col := b.columns[colID]
		if i := col.IndexOf(id); i >= 0 {
			return colID, col.Items[i], true
		}
	}
	return "", Task{}, false
}

// WithItems returns a new board where column id holds items. The receiver is
// left untouched; other columns are shared. The caller must not modify items
// afterwards. Unknown ids return the receiver.
func (b *Board) WithItems(id ColumnID, items []Task) *Board {
	col, ok := b.columns[id]
	if !ok {
		return b
	}

	next := &Board{
		order:   b.order,
		columns: make(map[ColumnID]Column, len(b.columns)),
	}
	for k, v := range b.columns {
		next.columns[k] = v
	}
	next.columns[id] = Column{Name: col.Name, Items: items}
	return next
}

// Equal reports whether both boards have the same columns in the same order
// with the same names and items
func (b *Board) Equal(other *Board) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	if !slices.Equal(b.order, other.order) {
		return false
	}
	for _, id := range b.order {
		x, y := b.columns[id], other.columns[id]
		if x.Name != y.Name || !slices.Equal(x.Items, y.Items) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the board as an object keyed by column id, keys in
// display order:
//
//	{"todo":{"name":"To Do","items":[{"id":"1","content":"..."}]}, ...}
func (b *Board) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range b.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(id))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		col := b.columns[id]
		if col.Items == nil {
			col.Items = []Task{}
		}
		val, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the format written by MarshalJSON. Key order in the
// input becomes the display order. The result is validated like NewBoard.
func (b *Board) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("board: expected object, got %v", tok)
	}

	var entries []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("board: expected column id, got %v", tok)
		}

		var col Column
		if err := dec.Decode(&col); err != nil {
			return fmt.Errorf("board: column %q: %w", key, err)
		}
		entries = append(entries, Entry{ID: ColumnID(key), Column: col})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("board: trailing data after object")
	}

	parsed, err := NewBoard(entries...)
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}
