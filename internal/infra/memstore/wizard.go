// Package memstore keeps in-flight checkout wizards in process memory.
// Abandoned attempts expire after a TTL; a restart loses them all, which is
// the intended contract for pre-payment state.
package memstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"tastebuds/internal/domain/wizard"
	"tastebuds/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrWizardNotFound = errors.New("no active wizard for this user and session")

type key struct {
	userID    uuid.UUID
	sessionID uuid.UUID
}

type entry struct {
	state     *wizard.State
	expiresAt time.Time
}

type WizardStore struct {
	mu      sync.RWMutex
	entries map[key]entry
	ttl     time.Duration
	clock   clock.Clock
}

func NewWizardStore(ttl time.Duration, clk clock.Clock) *WizardStore {
	return &WizardStore{
		entries: make(map[key]entry),
		ttl:     ttl,
		clock:   clk,
	}
}

// Put stores the state and refreshes its TTL. Starting over for the same
// session replaces any earlier attempt.
func (s *WizardStore) Put(userID, sessionID uuid.UUID, state *wizard.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key{userID, sessionID}] = entry{
		state:     state,
		expiresAt: s.clock.Now().Add(s.ttl),
	}
}

// Update runs fn against the stored state while holding the write lock and,
// on success, refreshes the TTL. State is shared between requests, so every
// mutation must go through here; handing the pointer out of the lock would
// race concurrent step submissions for the same user and session.
func (s *WizardStore) Update(userID, sessionID uuid.UUID, fn func(*wizard.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{userID, sessionID}
	e, ok := s.entries[k]
	if !ok || s.clock.Now().After(e.expiresAt) {
		return ErrWizardNotFound
	}
	if err := fn(e.state); err != nil {
		return err
	}

	e.expiresAt = s.clock.Now().Add(s.ttl)
	s.entries[k] = e
	return nil
}

// View runs fn under the read lock. fn must not mutate the state.
func (s *WizardStore) View(userID, sessionID uuid.UUID, fn func(*wizard.State) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key{userID, sessionID}]
	if !ok || s.clock.Now().After(e.expiresAt) {
		return ErrWizardNotFound
	}
	return fn(e.state)
}

func (s *WizardStore) Delete(userID, sessionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key{userID, sessionID})
}

func (s *WizardStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// RunSweeper evicts expired entries every interval until ctx is cancelled.
func (s *WizardStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *WizardStore) sweep() {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}
