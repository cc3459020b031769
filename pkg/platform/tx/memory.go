package tx

import (
	"context"
	"sync"

	dErrors "fact/pkg/domain-errors"
)

type memTxKey struct{}

// Participant is an in-memory store that can join a MemoryManager unit of
// work. Begin captures current state and keeps readers outside the unit
// waiting until exactly one of commit or rollback is called; rollback also
// restores the captured state.
type Participant interface {
	Begin() (commit, rollback func())
}

// MemoryManager gives in-memory stores all-or-nothing semantics: units of
// work are serialised, callers outside a unit only see committed state, and
// every participant is restored when fn fails or panics.
type MemoryManager struct {
	mu    sync.Mutex
	parts []Participant
}

// NewMemoryManager builds a manager over the given stores.
func NewMemoryManager(parts ...Participant) *MemoryManager {
	return &MemoryManager{parts: parts}
}

// InMemoryTx reports whether ctx is inside a MemoryManager unit of work.
func InMemoryTx(ctx context.Context) bool {
	_, ok := ctx.Value(memTxKey{}).(bool)
	return ok
}

func (m *MemoryManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InMemoryTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	commits := make([]func(), 0, len(m.parts))
	rollbacks := make([]func(), 0, len(m.parts))
	for _, p := range m.parts {
		commit, rollback := p.Begin()
		commits = append(commits, commit)
		rollbacks = append(rollbacks, rollback)
	}
	rollback := func() {
		for i := len(rollbacks) - 1; i >= 0; i-- {
			rollbacks[i]()
		}
	}

	defer func() {
		if p := recover(); p != nil {
			rollback()
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		rollback()
		return err
	}
	for _, commit := range commits {
		commit()
	}
	return nil
}

// UnitGate is embedded by in-memory participants. The unit of work holds it
// exclusively from Begin until commit or rollback; calls made outside the
// unit hold it shared.
type UnitGate struct {
	mu sync.RWMutex
}

// Enter is deferred by every store method: defer s.Enter(ctx)(). Calls made
// inside the unit pass through since the unit already holds the gate.
func (g *UnitGate) Enter(ctx context.Context) (leave func()) {
	if InMemoryTx(ctx) {
		return func() {}
	}
	g.mu.RLock()
	return g.mu.RUnlock
}

// Close blocks until no call outside a unit is running and keeps new ones out.
func (g *UnitGate) Close() { g.mu.Lock() }

// Open lets calls outside a unit proceed again.
func (g *UnitGate) Open() { g.mu.Unlock() }
