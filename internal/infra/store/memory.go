package store

import (
	"context"
	"sync"

	"textlens/internal/application"
	domain "textlens/internal/domain/analysis"
)

// Memory is the in-memory history store. It is the only implementation:
// history is deliberately non-durable and a process restart discards it.
// Safe for concurrent use; id assignment and insertion happen in one
// critical section so ids stay unique and strictly increasing.
type Memory struct {
	mu      sync.Mutex
	records []domain.Record
	nextID  domain.RecordID
	clock   application.Clock
}

func NewMemory(clock application.Clock) *Memory {
	if clock == nil {
		clock = application.SystemClock{}
	}
	return &Memory{nextID: 1, clock: clock}
}

func (m *Memory) Append(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *rec
	stored.ID = m.nextID
	m.nextID++
	stored.CreatedAt = m.clock.Now()
	m.records = append(m.records, stored)

	out := stored
	return &out, nil
}

func (m *Memory) List(ctx context.Context) ([]*domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Record, 0, len(m.records))
	for i := range m.records {
		rec := m.records[i]
		out = append(out, &rec)
	}
	return out, nil
}

func (m *Memory) Update(ctx context.Context, id domain.RecordID, patch domain.Patch) (*domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.records {
		if m.records[i].ID != id {
			continue
		}
		if patch.InputText != nil {
			m.records[i].InputText = *patch.InputText
		}
		if patch.Operation != nil {
			m.records[i].Operation = *patch.Operation
		}
		if patch.Result != nil {
			m.records[i].Result = patch.Result
		}
		out := m.records[i]
		return &out, nil
	}
	return nil, domain.ErrNotFound
}

func (m *Memory) Delete(ctx context.Context, id domain.RecordID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.records {
		if m.records[i].ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			break
		}
	}
	return nil
}
