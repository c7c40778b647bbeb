package storage

import "context"

// Memory keeps values in a map. Nothing survives the process.
type Memory struct {
	values map[string]string
}

// NewMemory returns an empty Memory
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error {
	return nil
}
