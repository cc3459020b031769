package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"fact/internal/audit"
	"fact/pkg/platform/sentinel"
	"fact/pkg/platform/tx"
)

// InMemoryStore keeps entries in a slice. It joins tx.MemoryManager units of
// work through Begin.
type InMemoryStore struct {
	gate    tx.UnitGate
	mu      sync.RWMutex
	types   []audit.Type
	entries []audit.Entry
	nextID  int64
}

// NewInMemory returns a store seeded with every audit.ChangeType.
func NewInMemory() *InMemoryStore {
	s := &InMemoryStore{nextID: 1}
	for i, ct := range audit.ChangeTypes {
		s.types = append(s.types, audit.Type{ID: i + 1, Name: ct})
	}
	return s
}

// NewInMemoryWithTypes returns a store that knows only the given types.
func NewInMemoryWithTypes(types ...audit.ChangeType) *InMemoryStore {
	s := &InMemoryStore{nextID: 1}
	for i, ct := range types {
		s.types = append(s.types, audit.Type{ID: i + 1, Name: ct})
	}
	return s
}

// Begin implements tx.Participant.
func (s *InMemoryStore) Begin() (commit, rollback func()) {
	s.gate.Close()
	s.mu.RLock()
	entries := slices.Clone(s.entries)
	nextID := s.nextID
	s.mu.RUnlock()
	commit = s.gate.Open
	rollback = func() {
		s.mu.Lock()
		s.entries = entries
		s.nextID = nextID
		s.mu.Unlock()
		s.gate.Open()
	}
	return commit, rollback
}

func (s *InMemoryStore) TypeByName(ctx context.Context, name audit.ChangeType) (*audit.Type, error) {
	defer s.gate.Enter(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.types {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Append(ctx context.Context, entry audit.Entry) error {
	defer s.gate.Enter(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = s.nextID
	s.nextID++
	s.entries = append(s.entries, entry)
	return nil
}

func (s *InMemoryStore) List(ctx context.Context, q audit.Query) ([]audit.Entry, int, error) {
	defer s.gate.Enter(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []audit.Entry{}
	for _, e := range s.entries {
		if matches(e, q) {
			matched = append(matched, e)
		}
	}
	slices.SortFunc(matched, func(a, b audit.Entry) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})

	total := len(matched)
	start := min(q.Page*q.Size, total)
	end := min(start+q.Size, total)
	return slices.Clone(matched[start:end]), total, nil
}

// All returns every entry in insertion order.
func (s *InMemoryStore) All() []audit.Entry {
	defer s.gate.Enter(context.Background())()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

func matches(e audit.Entry, q audit.Query) bool {
	if q.Location != "" && !strings.Contains(strings.ToLower(e.Location), strings.ToLower(q.Location)) {
		return false
	}
	if q.Email != "" && !strings.Contains(strings.ToLower(e.UserEmail), strings.ToLower(q.Email)) {
		return false
	}
	if q.From != nil && e.CreatedAt.Before(*q.From) {
		return false
	}
	if q.To != nil && e.CreatedAt.After(*q.To) {
		return false
	}
	return true
}
