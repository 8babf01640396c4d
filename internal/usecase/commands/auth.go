package commands

import (
	"context"
	"log/slog"

	reqdto "linenhire/internal/handler/dto/request"
	"linenhire/internal/pkg/clock"
	"linenhire/internal/pkg/errs"
	"linenhire/internal/pkg/jwt"
	"linenhire/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	account, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Not found and wrong password are indistinguishable to the caller.
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	if !account.IsActive() {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(account.PasswordHash(), req.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, account.ID(), a.clock.Now()); err != nil {
		// Non-critical; the login itself succeeded.
		slog.Warn("failed to update last login", "user_id", account.ID(), "error", err.Error())
	}

	return &LoginResult{UserID: account.ID(), Token: token}, nil
}
