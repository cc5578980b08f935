//go:build e2e

package admin_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"tastebuds/internal/domain/user"
	"tastebuds/internal/handler/dto/request"
	"tastebuds/internal/usecase/queries"
	"tastebuds/tests/common/dbtest"
	"tastebuds/tests/common/helper"
	"tastebuds/tests/e2e"
	authhelper "tastebuds/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type adminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func sessionURL(id uuid.UUID) string {
	return fmt.Sprintf("/api/admin/sessions/%s", id)
}

func validEdit() request.UpdateSessionRequest {
	return request.UpdateSessionRequest{
		Date:       time.Now().AddDate(0, 0, 21).Format("2006-01-02"),
		Instructor: "Priya",
		StartTime:  "17:00",
		EndTime:    "18:30",
		PricePence: 3000,
		SpotsTotal: 12,
	}
}

func (s *adminSuite) TestSessionEditing() {
	s.Run("admin edits a scheduled session", func() {
		t := s.T()

		_, token := authhelper.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		sessionID := dbtest.SeedSession(t, s.DB, "kidsAfterSchool", 2500, 10)

		// One spot already taken by a booking
		_, err := s.DB.Exec(t.Context(),
			"UPDATE sessions SET spots_available = spots_available - 1 WHERE id = $1", sessionID)
		require.NoError(t, err)

		edit := validEdit()
		w := helper.PerformRequest(t, s.Router, http.MethodPut, sessionURL(sessionID), edit, token)
		require.Equal(t, http.StatusOK, w.Code)

		var view queries.SessionView
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &view))
		require.Equal(t, edit.Date, view.Date)
		require.Equal(t, "Priya", view.Instructor)
		require.Equal(t, int64(3000), view.PricePence)
		require.Equal(t, 12, view.SpotsTotal)
		require.Equal(t, 11, view.SpotsAvailable, "the booked spot survives the capacity change")

		var price int64
		var available int
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT price_pence, spots_available FROM sessions WHERE id = $1", sessionID).
			Scan(&price, &available))
		require.Equal(t, int64(3000), price)
		require.Equal(t, 11, available)
	})

	s.Run("capacity cannot shrink below booked spots", func() {
		t := s.T()

		_, token := authhelper.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		sessionID := dbtest.SeedSession(t, s.DB, "kidsAfterSchool", 2500, 10)

		// Eight spots already booked
		_, err := s.DB.Exec(t.Context(),
			"UPDATE sessions SET spots_available = 2 WHERE id = $1", sessionID)
		require.NoError(t, err)

		edit := validEdit()
		edit.SpotsTotal = 5
		w := helper.PerformRequest(t, s.Router, http.MethodPut, sessionURL(sessionID), edit, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("unknown session returns 404", func() {
		t := s.T()

		_, token := authhelper.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := helper.PerformRequest(t, s.Router, http.MethodPut, sessionURL(uuid.New()), validEdit(), token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("editing sessions requires the admin role", func() {
		t := s.T()

		_, token := authhelper.CreateAndLogin(t, s.DB, s.Router, "parent@example.com", string(user.RoleParent))
		sessionID := dbtest.SeedSession(t, s.DB, "kidsAfterSchool", 2500, 10)

		w := helper.PerformRequest(t, s.Router, http.MethodPut, sessionURL(sessionID), validEdit(), token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *adminSuite) TestManualEmail() {
	emailBody := request.SendEmailRequest{
		To:   "parent@example.com",
		Type: "confirmation",
		Data: request.EmailData{
			BookedBy:    "Sam Baker",
			StudentName: "Robin Baker",
			ClassName:   "Junior Bakers",
			SessionDate: "2026-09-15",
			VenueName:   "Riverside Kitchen",
			Amount:      2500,
		},
	}

	s.Run("unconfigured mailer fails closed", func() {
		t := s.T()

		_, token := authhelper.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := helper.PerformRequest(t, s.Router, http.MethodPost, "/api/emails/send", emailBody, token)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})

	s.Run("sending email requires the admin role", func() {
		t := s.T()

		_, token := authhelper.CreateAndLogin(t, s.DB, s.Router, "parent@example.com", string(user.RoleParent))

		w := helper.PerformRequest(t, s.Router, http.MethodPost, "/api/emails/send", emailBody, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
