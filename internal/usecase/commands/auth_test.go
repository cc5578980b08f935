//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tastebuds/internal/domain/user"
	"tastebuds/internal/handler/dto/request"
	"tastebuds/internal/infra"
	"tastebuds/internal/pkg/errs"
	"tastebuds/internal/pkg/jwt"
	"tastebuds/internal/pkg/password"
	"tastebuds/internal/usecase/commands"
	"tastebuds/tests/common/builder"
	commandsmock "tastebuds/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	userRepo   *commandsmock.MockUserRepository
	jwtService *jwt.Service
	commands   commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = commandsmock.NewMockUserRepository(s.ctrl)
	s.jwtService = jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	s.commands = commands.NewAuthCommands(s.userRepo, s.jwtService)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthCommandsTestSuite) activeUser(plaintext string) *user.User {
	hash, err := password.HashPassword(plaintext)
	s.Require().NoError(err)

	u, err := builder.NewUserBuilder().
		With(func(b *builder.UserBuilder) { b.PasswordHash = hash }).
		BuildDomain()
	s.Require().NoError(err)
	return u
}

func (s *AuthCommandsTestSuite) TestSignup() {
	s.Run("valid signup hashes the password and issues tokens", func() {
		var created *user.User
		s.userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				created = u
				return nil
			})

		result, err := s.commands.Signup(context.Background(), request.SignupRequest{
			Email:     "parent@example.com",
			Password:  "password123",
			FirstName: "Pat",
			LastName:  "Baker",
			Role:      "parent",
		})
		s.Require().NoError(err)

		s.Equal("parent@example.com", result.User.Email)
		s.NotEmpty(result.TokenPair.AccessToken)
		s.NotEmpty(result.TokenPair.RefreshToken)

		s.Require().NotNil(created)
		s.NotEqual("password123", created.PasswordHash())
		s.NoError(password.ComparePassword(created.PasswordHash(), "password123"))
	})

	s.Run("admin role cannot self-register", func() {
		_, err := s.commands.Signup(context.Background(), request.SignupRequest{
			Email:     "admin@example.com",
			Password:  "password123",
			FirstName: "Pat",
			LastName:  "Baker",
			Role:      "admin",
		})
		s.Require().ErrorIs(err, commands.ErrAdminSignupForbidden)
	})

	s.Run("duplicate email maps to ErrEmailTaken", func() {
		s.userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate email", errs.New("unique violation"), infra.KindDuplicateKey))

		_, err := s.commands.Signup(context.Background(), request.SignupRequest{
			Email:     "parent@example.com",
			Password:  "password123",
			FirstName: "Pat",
			LastName:  "Baker",
			Role:      "parent",
		})
		s.Require().ErrorIs(err, commands.ErrEmailTaken)
	})

	s.Run("invalid email never reaches the repository", func() {
		_, err := s.commands.Signup(context.Background(), request.SignupRequest{
			Email:     "not-an-email",
			Password:  "password123",
			FirstName: "Pat",
			LastName:  "Baker",
			Role:      "parent",
		})
		s.Require().ErrorIs(err, user.ErrInvalidEmail)
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("valid credentials issue tokens", func() {
		u := s.activeUser("password123")
		s.userRepo.EXPECT().
			FindByEmail(gomock.Any(), "parent@example.com").
			Return(u, nil)

		result, err := s.commands.Login(context.Background(), request.LoginRequest{
			Email:    "parent@example.com",
			Password: "password123",
		})
		s.Require().NoError(err)
		s.Equal(u.ID(), result.User.ID)
		s.NotEmpty(result.TokenPair.AccessToken)
	})

	s.Run("wrong password is rejected", func() {
		s.userRepo.EXPECT().
			FindByEmail(gomock.Any(), "parent@example.com").
			Return(s.activeUser("password123"), nil)

		_, err := s.commands.Login(context.Background(), request.LoginRequest{
			Email:    "parent@example.com",
			Password: "wrongpassword",
		})
		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("unknown email gets the same error as a bad password", func() {
		s.userRepo.EXPECT().
			FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, infra.WrapRepoErr("user not found", errs.New("no rows"), infra.KindNotFound))

		_, err := s.commands.Login(context.Background(), request.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})
		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("inactive account is rejected", func() {
		active := s.activeUser("password123")
		inactive := user.ReconstructUser(
			active.ID(), active.Email(), active.PasswordHash(), active.Role(),
			active.Name(), active.Phone(), false, testTime, testTime,
		)
		s.userRepo.EXPECT().
			FindByEmail(gomock.Any(), "parent@example.com").
			Return(inactive, nil)

		_, err := s.commands.Login(context.Background(), request.LoginRequest{
			Email:    "parent@example.com",
			Password: "password123",
		})
		s.Require().ErrorIs(err, commands.ErrUserInactive)
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	s.Run("valid refresh token rotates the pair", func() {
		u := s.activeUser("password123")
		refreshToken, err := s.jwtService.GenerateRefreshToken(u.ID(), u.Role())
		s.Require().NoError(err)

		s.userRepo.EXPECT().
			FindByID(gomock.Any(), u.ID()).
			Return(u, nil)

		pair, err := s.commands.RefreshToken(context.Background(), refreshToken)
		s.Require().NoError(err)
		s.NotEmpty(pair.AccessToken)
		s.NotEmpty(pair.RefreshToken)
	})

	s.Run("access token cannot be used as a refresh token", func() {
		u := s.activeUser("password123")
		accessToken, err := s.jwtService.GenerateAccessToken(u.ID(), u.Role())
		s.Require().NoError(err)

		_, err = s.commands.RefreshToken(context.Background(), accessToken)
		s.Require().ErrorIs(err, commands.ErrTokenValidation)
	})

	s.Run("garbage token is rejected", func() {
		_, err := s.commands.RefreshToken(context.Background(), "not-a-jwt")
		s.Require().ErrorIs(err, commands.ErrTokenValidation)
	})

	s.Run("deleted user cannot refresh", func() {
		userID := uuid.New()
		refreshToken, err := s.jwtService.GenerateRefreshToken(userID, user.RoleParent)
		s.Require().NoError(err)

		s.userRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(nil, infra.WrapRepoErr("user not found", errs.New("no rows"), infra.KindNotFound))

		_, err = s.commands.RefreshToken(context.Background(), refreshToken)
		s.Require().ErrorIs(err, commands.ErrUserNotFound)
	})
}

func TestAuthCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}
