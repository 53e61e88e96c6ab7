package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domain "textlens/internal/domain/analysis"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func appendSentiment(t *testing.T, m *Memory, text string) *domain.Record {
	t.Helper()
	rec, err := m.Append(context.Background(), &domain.Record{
		InputText: text,
		Operation: domain.OpSentiment,
		Result:    domain.SentimentResult{Label: "neutral"},
	})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	return rec
}

func TestAppendAssignsIncreasingIDsAndTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory(fixedClock{now})

	first := appendSentiment(t, m, "one")
	second := appendSentiment(t, m, "two")

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("unexpected ids: %d, %d", first.ID, second.ID)
	}
	if !first.CreatedAt.Equal(now) {
		t.Fatalf("unexpected createdAt: %v", first.CreatedAt)
	}

	list, _ := m.List(context.Background())
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestListReturnsSnapshot(t *testing.T) {
	m := NewMemory(nil)
	appendSentiment(t, m, "one")

	list, _ := m.List(context.Background())
	list[0].InputText = "mutated"

	list2, _ := m.List(context.Background())
	if list2[0].InputText != "one" {
		t.Fatalf("list leaked internal state: %q", list2[0].InputText)
	}
}

func TestUpdateMergesGivenFieldsOnly(t *testing.T) {
	m := NewMemory(nil)
	rec := appendSentiment(t, m, "original text")

	newText := "updated text"
	merged, err := m.Update(context.Background(), rec.ID, domain.Patch{InputText: &newText})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if merged.InputText != "updated text" {
		t.Fatalf("inputText not merged: %q", merged.InputText)
	}
	if merged.Operation != domain.OpSentiment {
		t.Fatalf("operation should be retained, got %q", merged.Operation)
	}
	if merged.ID != rec.ID || !merged.CreatedAt.Equal(rec.CreatedAt) {
		t.Fatalf("identity fields changed: %+v", merged)
	}
}

func TestUpdateUnknownIDFails(t *testing.T) {
	m := NewMemory(nil)

	_, err := m.Update(context.Background(), 42, domain.Patch{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	m := NewMemory(nil)
	rec := appendSentiment(t, m, "one")
	appendSentiment(t, m, "two")

	if err := m.Delete(context.Background(), rec.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := m.Delete(context.Background(), rec.ID); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
	if err := m.Delete(context.Background(), 999); err != nil {
		t.Fatalf("delete of unknown id should be a no-op, got %v", err)
	}

	list, _ := m.List(context.Background())
	if len(list) != 1 || list[0].InputText != "two" {
		t.Fatalf("unexpected list after delete: %+v", list)
	}
}

func TestIDsStayUniqueAfterDelete(t *testing.T) {
	m := NewMemory(nil)
	appendSentiment(t, m, "one")
	second := appendSentiment(t, m, "two")

	m.Delete(context.Background(), second.ID)
	third := appendSentiment(t, m, "three")

	if third.ID <= second.ID {
		t.Fatalf("id reused after delete: %d <= %d", third.ID, second.ID)
	}
}

func TestConcurrentAppendsKeepIDsUnique(t *testing.T) {
	m := NewMemory(nil)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			appendTestRecord(m)
		}()
	}
	wg.Wait()

	list, _ := m.List(context.Background())
	if len(list) != n {
		t.Fatalf("expected %d records, got %d", n, len(list))
	}
	seen := map[domain.RecordID]bool{}
	for _, rec := range list {
		if seen[rec.ID] {
			t.Fatalf("duplicate id %d", rec.ID)
		}
		seen[rec.ID] = true
	}
	for i := 1; i < len(list); i++ {
		if list[i].ID <= list[i-1].ID {
			t.Fatalf("ids not increasing in insertion order: %d then %d", list[i-1].ID, list[i].ID)
		}
	}
}

func appendTestRecord(m *Memory) {
	m.Append(context.Background(), &domain.Record{
		InputText: "concurrent",
		Operation: domain.OpChat,
		Result:    domain.ChatResult{Reply: "hi"},
	})
}
