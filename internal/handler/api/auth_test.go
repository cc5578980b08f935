//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tastebuds/internal/handler/api"
	"tastebuds/internal/pkg/config"
	"tastebuds/internal/pkg/cookie"
	"tastebuds/internal/pkg/jwt"
	"tastebuds/internal/usecase/commands"
	"tastebuds/internal/usecase/queries"
	commandsmock "tastebuds/tests/mock/commands"
	queriesmock "tastebuds/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.CookieConfig{SameSite: "Lax"})

	s.router.POST("/auth/signup", s.handler.Signup)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Stand-in for the auth middleware
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AuthHandlerTestSuite) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func authResult(email string) *commands.AuthResult {
	return &commands.AuthResult{
		User: &queries.UserView{
			ID:        uuid.New(),
			Email:     email,
			Role:      "parent",
			FirstName: "Pat",
			LastName:  "Baker",
			IsActive:  true,
		},
		TokenPair: &commands.TokenPair{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		},
	}
}

func (s *AuthHandlerTestSuite) TestSignup() {
	s.Run("valid signup sets cookies and returns the user", func() {
		s.mockCommands.EXPECT().
			Signup(gomock.Any(), gomock.Any()).
			Return(authResult("parent@example.com"), nil)

		w := s.postJSON("/auth/signup", `{
			"email": "parent@example.com",
			"password": "password123",
			"role": "parent",
			"firstName": "Pat",
			"lastName": "Baker"
		}`)

		s.Equal(http.StatusCreated, w.Code)

		var resp struct {
			User queries.UserView `json:"user"`
		}
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("parent@example.com", resp.User.Email)

		cookies := w.Result().Cookies()
		names := make([]string, 0, len(cookies))
		for _, c := range cookies {
			names = append(names, c.Name)
		}
		s.Contains(names, cookie.AccessTokenCookieName)
		s.Contains(names, cookie.RefreshTokenCookieName)
		s.Contains(names, cookie.LoggedInCookieName)
	})

	s.Run("duplicate email returns 409", func() {
		s.mockCommands.EXPECT().
			Signup(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrEmailTaken)

		w := s.postJSON("/auth/signup", `{
			"email": "taken@example.com",
			"password": "password123",
			"role": "parent",
			"firstName": "Pat",
			"lastName": "Baker"
		}`)

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("malformed body returns 400", func() {
		w := s.postJSON("/auth/signup", `{"email": "not json`)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.Run("valid credentials return 200", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(authResult("parent@example.com"), nil)

		w := s.postJSON("/auth/login", `{"email": "parent@example.com", "password": "password123"}`)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("bad credentials return 401", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials)

		w := s.postJSON("/auth/login", `{"email": "parent@example.com", "password": "wrong"}`)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("inactive account returns 403", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserInactive)

		w := s.postJSON("/auth/login", `{"email": "parent@example.com", "password": "password123"}`)
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	w := s.postJSON("/auth/logout", "")
	s.Equal(http.StatusNoContent, w.Code)

	for _, c := range w.Result().Cookies() {
		s.Less(c.MaxAge, 0, "cookie %s should be expired", c.Name)
	}
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("authenticated request returns the user", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), gomock.Any()).
			Return(&queries.UserView{Email: "parent@example.com", Role: "parent"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("missing auth returns 401", func() {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
