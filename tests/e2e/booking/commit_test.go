//go:build e2e

package booking_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"tastebuds/internal/domain/user"
	"tastebuds/internal/handler/dto/request"
	"tastebuds/internal/usecase/commands"
	"tastebuds/internal/usecase/queries"
	"tastebuds/tests/common/dbtest"
	"tastebuds/tests/common/helper"
	"tastebuds/tests/e2e"
	authhelper "tastebuds/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type commitSuite struct {
	e2e.SharedSuite
}

func TestCommitSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(commitSuite))
}

// readyCheckout registers a parent, seeds a student and walks the wizard to
// the payment step. Returns the bearer token for the commit call.
func (s *commitSuite) readyCheckout(t *testing.T, email string, sessionID uuid.UUID) string {
	t.Helper()

	parentID, token := authhelper.CreateAndLogin(t, s.DB, s.Router, email, string(user.RoleParent))
	studentID := dbtest.CreateTestStudent(t, s.DB, parentID, "Robin", "Baker")

	w := helper.PerformRequest(t, s.Router, http.MethodPost, wizardURL(sessionID, ""), nil, token)
	require.Equal(t, http.StatusCreated, w.Code)

	steps := []struct {
		step string
		body any
	}{
		{"participant", request.ParticipantRequest{StudentID: &studentID}},
		{"medical", validMedical()},
		{"questionnaire", validQuestionnaire()},
		{"terms", request.TermsRequest{Accepted: true}},
	}
	for _, st := range steps {
		w = helper.PerformRequest(t, s.Router, http.MethodPut, wizardURL(sessionID, st.step), st.body, token)
		require.Equal(t, http.StatusOK, w.Code, "step %s", st.step)
	}
	return token
}

func (s *commitSuite) commit(t *testing.T, sessionID uuid.UUID, intentID, token string) *httptest.ResponseRecorder {
	t.Helper()
	return helper.PerformRequest(t, s.Router, http.MethodPost, wizardURL(sessionID, "commit"),
		request.CommitRequest{PaymentIntentID: intentID}, token)
}

func (s *commitSuite) sessionRow(t *testing.T, sessionID uuid.UUID) (int, string) {
	t.Helper()
	var available int
	var status string
	require.NoError(t, s.DB.QueryRow(t.Context(),
		"SELECT spots_available, status FROM sessions WHERE id = $1", sessionID).
		Scan(&available, &status))
	return available, status
}

func (s *commitSuite) TestCapacityUnderContention() {
	s.Run("two concurrent commits against the last spot yield one booking", func() {
		t := s.T()

		sessionID := dbtest.SeedSession(t, s.DB, "kidsAfterSchool", 2500, 1)
		tokenA := s.readyCheckout(t, "rival-a@example.com", sessionID)
		tokenB := s.readyCheckout(t, "rival-b@example.com", sessionID)

		codes := make(chan int, 2)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			codes <- s.commit(t, sessionID, "pi_2500_rivala", tokenA).Code
		}()
		go func() {
			defer wg.Done()
			codes <- s.commit(t, sessionID, "pi_2500_rivalb", tokenB).Code
		}()
		wg.Wait()
		close(codes)

		var got []int
		for code := range codes {
			got = append(got, code)
		}
		require.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, got)

		var bookings int
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM bookings WHERE session_id = $1 AND status = 'confirmed'", sessionID).
			Scan(&bookings))
		require.Equal(t, 1, bookings)

		available, status := s.sessionRow(t, sessionID)
		require.Equal(t, 0, available)
		require.Equal(t, "full", status)

		var jobs int
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM notification_jobs").Scan(&jobs))
		require.Equal(t, 1, jobs, "only the winning commit enqueues a confirmation")
	})

	s.Run("replaying the same intent returns the stored booking", func() {
		t := s.T()

		sessionID := dbtest.SeedSession(t, s.DB, "kidsAfterSchool", 2500, 1)
		token := s.readyCheckout(t, "parent@example.com", sessionID)

		w := s.commit(t, sessionID, "pi_2500_replay", token)
		require.Equal(t, http.StatusCreated, w.Code)

		var first queries.BookingView
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &first))

		w = s.commit(t, sessionID, "pi_2500_replay", token)
		require.Equal(t, http.StatusOK, w.Code)

		var replayed queries.BookingView
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &replayed))
		require.Equal(t, first.ID, replayed.ID)

		available, _ := s.sessionRow(t, sessionID)
		require.Equal(t, 0, available, "the replay must not take a second spot")
	})
}

func (s *commitSuite) TestPaymentGuards() {
	s.Run("an unsettled intent cannot commit", func() {
		t := s.T()

		sessionID := dbtest.SeedSession(t, s.DB, "kidsAfterSchool", 2500, 1)
		token := s.readyCheckout(t, "parent@example.com", sessionID)

		w := s.commit(t, sessionID, "pi_2500_processing", token)
		require.Equal(t, http.StatusPaymentRequired, w.Code)

		available, status := s.sessionRow(t, sessionID)
		require.Equal(t, 1, available)
		require.Equal(t, "open", status)
	})

	s.Run("an intent for the wrong amount cannot commit", func() {
		t := s.T()

		sessionID := dbtest.SeedSession(t, s.DB, "kidsAfterSchool", 2500, 1)
		token := s.readyCheckout(t, "parent@example.com", sessionID)

		w := s.commit(t, sessionID, "pi_1000_cheap", token)
		require.Equal(t, http.StatusConflict, w.Code)

		available, _ := s.sessionRow(t, sessionID)
		require.Equal(t, 1, available)
	})

	s.Run("a completed checkout opens a payment intent", func() {
		t := s.T()

		sessionID := dbtest.SeedSession(t, s.DB, "kidsAfterSchool", 2500, 1)
		token := s.readyCheckout(t, "parent@example.com", sessionID)

		w := helper.PerformRequest(t, s.Router, http.MethodPost, "/api/payments/create-intent",
			request.CreateIntentRequest{SessionID: sessionID, Amount: 2500}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var result commands.CreateIntentResult
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &result))
		require.NotEmpty(t, result.IntentID)
		require.NotEmpty(t, result.ClientSecret)
		require.Equal(t, int64(2500), result.AmountPence)
	})
}
