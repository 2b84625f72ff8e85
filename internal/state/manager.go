package state

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/StudyGarden_Go/internal/domain"
	"github.com/osse101/StudyGarden_Go/internal/logger"
	"github.com/osse101/StudyGarden_Go/internal/metrics"
)

// Manager owns the single mutable aggregate and its load/save boundaries.
// Commands mutate through Update, reads go through View; both serialize on
// one mutex because the HTTP surface can deliver concurrent calls even though
// each operation itself is short and synchronous.
type Manager struct {
	mu    sync.Mutex
	st    *domain.State
	store Store
}

// NewManager loads the aggregate from the store. A missing, corrupt, or
// unmigratable document falls back to the hard-coded default state without
// returning an error: persistence failures must never block a study session.
func NewManager(ctx context.Context, store Store) *Manager {
	log := logger.FromContext(ctx)
	m := &Manager{store: store}

	raw, err := store.Read()
	if err != nil {
		if !errors.Is(err, ErrNoDocument) {
			log.Warn("State document unreadable, starting fresh", "error", err)
			metrics.StateLoadFallbacks.Inc()
		}
		m.st = domain.NewState()
		m.save(ctx)
		return m
	}

	st, steps, err := Decode(raw)
	if steps > 0 {
		metrics.StateMigrations.Add(float64(steps))
	}
	if err != nil {
		log.Warn("State document corrupt, starting fresh", "error", err)
		metrics.StateLoadFallbacks.Inc()
		m.st = domain.NewState()
		m.save(ctx)
		return m
	}

	m.st = st
	log.Info("State loaded", "items", len(st.Garden.Items), "streak", st.Streak.Current)
	// Save back in canonical format so migrations apply once.
	m.save(ctx)
	return m
}

// Update runs fn against a clone of the aggregate and swaps the clone in only
// when fn succeeds, then persists. A failing fn leaves the state untouched,
// which gives every command all-or-nothing semantics.
func (m *Manager) Update(ctx context.Context, fn func(st *domain.State) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.st.Clone()
	if err := fn(next); err != nil {
		return err
	}
	m.st = next
	m.save(ctx)
	return nil
}

// View runs fn with read access to the aggregate. fn must not mutate or
// retain the state; copy what it needs into the result.
func (m *Manager) View(fn func(st *domain.State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.st)
}

// save persists the current aggregate. Write failures are logged and counted
// but deliberately not propagated: the in-memory state stays authoritative
// for the rest of the session.
func (m *Manager) save(ctx context.Context) {
	log := logger.FromContext(ctx)

	data, err := Encode(m.st)
	if err != nil {
		log.Error("Failed to encode state", "error", err)
		return
	}
	if err := m.store.Write(data); err != nil {
		log.Error("Failed to persist state", "error", err)
		return
	}
	metrics.StateSaves.Inc()
}
