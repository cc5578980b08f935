package commands

import (
	"context"

	"tastebuds/internal/domain/user"
	reqdto "tastebuds/internal/handler/dto/request"
	"tastebuds/internal/infra"
	"tastebuds/internal/pkg/errs"
	"tastebuds/internal/pkg/jwt"
	"tastebuds/internal/pkg/password"
	"tastebuds/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAdminSignupForbidden = errs.New("admin accounts cannot self-register")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	User      *queries.UserView
	TokenPair *TokenPair
}

type AuthCommands interface {
	Signup(ctx context.Context, req reqdto.SignupRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup registers a parent or young adult account. The admin role is only
// ever provisioned out of band.
func (a *authCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, err
	}
	if role == user.RoleAdmin {
		return nil, ErrAdminSignupForbidden
	}
	name, err := user.NewName(req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	u := user.NewUser(email, hash, role, name, req.Phone)
	if err := a.userRepo.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return a.issueTokens(u)
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	u, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration.
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(u.PasswordHash(), req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issueTokens(u)
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate the user still exists and is active
	u, err := a.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	return a.generatePair(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokens(u *user.User) (*AuthResult, error) {
	pair, err := a.generatePair(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		User:      queries.NewUserView(u),
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) generatePair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
