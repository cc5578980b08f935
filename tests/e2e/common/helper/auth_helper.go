//go:build e2e

// Package helper provides authentication shortcuts for end to end suites.
package helper

import (
	"net/http"
	"testing"

	"tastebuds/internal/handler/dto/request"
	"tastebuds/internal/pkg/cookie"
	"tastebuds/tests/common/dbtest"
	"tastebuds/tests/common/helper"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in through the API and returns the access token issued in the
// response cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := helper.PerformRequest(t, router, http.MethodPost, "/api/auth/login", request.LoginRequest{
		Email:    email,
		Password: password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed for %s", email)

	for _, c := range w.Result().Cookies() {
		if c.Name == cookie.AccessTokenCookieName {
			require.NotEmpty(t, c.Value, "access token cookie is empty")
			return c.Value
		}
	}
	t.Fatalf("login response for %s carried no access token cookie", email)
	return ""
}

// CreateAndLogin seeds a user with the shared test password and logs them in.
func CreateAndLogin(t *testing.T, db *pgxpool.Pool, router *gin.Engine, email, role string) (uuid.UUID, string) {
	t.Helper()

	userID := dbtest.CreateTestUser(t, db, email, role)
	token := LoginUser(t, router, email, dbtest.TestPassword)
	return userID, token
}
