//go:build unit

package memstore_test

import (
	"sync"
	"testing"
	"time"

	"tastebuds/internal/domain/wizard"
	"tastebuds/internal/infra/memstore"
	"tastebuds/internal/pkg/clock"
	"tastebuds/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T, userID uuid.UUID, now time.Time) *wizard.State {
	t.Helper()
	snapshot, err := builder.NewSessionBuilder().BuildDomain()
	require.NoError(t, err)

	state, err := wizard.NewState(userID, snapshot, now)
	require.NoError(t, err)
	return state
}

func TestWizardStore(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("put then view", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		store := memstore.NewWizardStore(time.Hour, clk)

		userID := uuid.New()
		state := newState(t, userID, start)
		sessionID := state.Session().ID()

		store.Put(userID, sessionID, state)

		var got *wizard.State
		require.NoError(t, store.View(userID, sessionID, func(s *wizard.State) error {
			got = s
			return nil
		}))
		assert.Same(t, state, got)
	})

	t.Run("missing entry", func(t *testing.T) {
		store := memstore.NewWizardStore(time.Hour, clock.NewMockClock(start))
		err := store.View(uuid.New(), uuid.New(), func(*wizard.State) error { return nil })
		require.ErrorIs(t, err, memstore.ErrWizardNotFound)
	})

	t.Run("entry expires after the ttl", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		store := memstore.NewWizardStore(time.Hour, clk)

		userID := uuid.New()
		state := newState(t, userID, start)
		store.Put(userID, state.Session().ID(), state)

		clk.Add(time.Hour + time.Minute)

		err := store.Update(userID, state.Session().ID(), func(*wizard.State) error { return nil })
		require.ErrorIs(t, err, memstore.ErrWizardNotFound)
	})

	t.Run("update applies the mutation and extends the ttl", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		store := memstore.NewWizardStore(time.Hour, clk)

		userID := uuid.New()
		state := newState(t, userID, start)
		sessionID := state.Session().ID()
		store.Put(userID, sessionID, state)

		st, err := builder.NewStudentBuilder().WithParent(userID).BuildDomain()
		require.NoError(t, err)

		clk.Add(50 * time.Minute)
		require.NoError(t, store.Update(userID, sessionID, func(s *wizard.State) error {
			return s.ChooseStudent(st)
		}))
		clk.Add(50 * time.Minute)

		require.NoError(t, store.View(userID, sessionID, func(s *wizard.State) error {
			require.NotNil(t, s.Participant())
			assert.Equal(t, st.FullName(), s.Participant().Name)
			return nil
		}))
	})

	t.Run("failed update keeps the old ttl", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		store := memstore.NewWizardStore(time.Hour, clk)

		userID := uuid.New()
		state := newState(t, userID, start)
		sessionID := state.Session().ID()
		store.Put(userID, sessionID, state)

		clk.Add(50 * time.Minute)
		err := store.Update(userID, sessionID, func(*wizard.State) error {
			return wizard.ErrStepOutOfOrder
		})
		require.ErrorIs(t, err, wizard.ErrStepOutOfOrder)
		clk.Add(50 * time.Minute)

		err = store.View(userID, sessionID, func(*wizard.State) error { return nil })
		require.ErrorIs(t, err, memstore.ErrWizardNotFound)
	})

	t.Run("put replaces an earlier attempt", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		store := memstore.NewWizardStore(time.Hour, clk)

		userID := uuid.New()
		first := newState(t, userID, start)
		sessionID := first.Session().ID()
		store.Put(userID, sessionID, first)

		second, err := wizard.NewState(userID, first.Session(), start.Add(time.Minute))
		require.NoError(t, err)
		store.Put(userID, sessionID, second)

		var got *wizard.State
		require.NoError(t, store.View(userID, sessionID, func(s *wizard.State) error {
			got = s
			return nil
		}))
		assert.Same(t, second, got)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		store := memstore.NewWizardStore(time.Hour, clk)

		userID := uuid.New()
		state := newState(t, userID, start)
		store.Put(userID, state.Session().ID(), state)

		store.Delete(userID, state.Session().ID())

		err := store.View(userID, state.Session().ID(), func(*wizard.State) error { return nil })
		require.ErrorIs(t, err, memstore.ErrWizardNotFound)
		assert.Equal(t, 0, store.Len())
	})

	// Run with -race: a double-clicked step submission and a status poll hit
	// the same entry at once, and all state access must stay inside the lock.
	t.Run("concurrent update and view on one entry", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		store := memstore.NewWizardStore(time.Hour, clk)

		userID := uuid.New()
		state := newState(t, userID, start)
		sessionID := state.Session().ID()
		store.Put(userID, sessionID, state)

		st, err := builder.NewStudentBuilder().WithParent(userID).BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Update(userID, sessionID, func(s *wizard.State) error {
			return s.ChooseStudent(st)
		}))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = store.Update(userID, sessionID, func(s *wizard.State) error {
					return s.SetMedical(builder.ValidMedicalInfo(), builder.ValidEmergencyContact())
				})
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				_ = store.View(userID, sessionID, func(s *wizard.State) error {
					s.ReadyForPayment()
					return nil
				})
			}
		}()
		wg.Wait()

		require.NoError(t, store.View(userID, sessionID, func(s *wizard.State) error {
			require.NotNil(t, s.MedicalInfo())
			return nil
		}))
	})
}
