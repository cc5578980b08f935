//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"tastebuds/internal/domain/user"
	"tastebuds/internal/handler/dto/request"
	"tastebuds/tests/common/dbtest"
	"tastebuds/tests/common/helper"
	"tastebuds/tests/e2e"
	authhelper "tastebuds/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL = "/api/auth/signup"
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "parent@example.com", string(user.RoleParent))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleParent))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestSignup() {
	tests := []struct {
		name           string
		body           request.SignupRequest
		expectedStatus int
	}{
		{
			name: "parent account can register",
			body: request.SignupRequest{
				Email:     "new-parent@example.com",
				Password:  "password123",
				FirstName: "Pat",
				LastName:  "Baker",
				Role:      "parent",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "young adult account can register",
			body: request.SignupRequest{
				Email:     "teen@example.com",
				Password:  "password123",
				FirstName: "Jo",
				LastName:  "Baker",
				Role:      "youngAdult",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate email is rejected",
			body: request.SignupRequest{
				Email:     "parent@example.com",
				Password:  "password123",
				FirstName: "Pat",
				LastName:  "Baker",
				Role:      "parent",
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "admin role cannot self-register",
			body: request.SignupRequest{
				Email:     "sneaky@example.com",
				Password:  "password123",
				FirstName: "Pat",
				LastName:  "Baker",
				Role:      "admin",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "short password is rejected",
			body: request.SignupRequest{
				Email:     "short@example.com",
				Password:  "short",
				FirstName: "Pat",
				LastName:  "Baker",
				Role:      "parent",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := helper.PerformRequest(t, s.Router, http.MethodPost, signupURL, tt.body, "")
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				require.Contains(t, w.Body.String(), tt.body.Email)
				require.NotContains(t, w.Body.String(), "password")
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "parent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nobody@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "parent@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "parent@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := helper.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}, "")
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				cookies := w.Result().Cookies()
				names := make([]string, 0, len(cookies))
				for _, c := range cookies {
					names = append(names, c.Name)
				}
				require.Contains(t, names, "access_token")
				require.Contains(t, names, "refresh_token")
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("authenticated user sees their profile", func() {
		t := s.T()

		token := authhelper.LoginUser(t, s.Router, "parent@example.com", dbtest.TestPassword)
		w := helper.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "parent@example.com")
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("missing token is rejected", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("garbage token is rejected", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("logout clears session cookies", func() {
		t := s.T()

		token := authhelper.LoginUser(t, s.Router, "parent@example.com", dbtest.TestPassword)
		w := helper.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)

		require.Equal(t, http.StatusNoContent, w.Code)
		for _, c := range w.Result().Cookies() {
			require.Negative(t, c.MaxAge, "cookie %s should be expired", c.Name)
		}
	})

	s.Run("logout requires authentication", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
