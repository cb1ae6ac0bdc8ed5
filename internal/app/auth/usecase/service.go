package usecase

import (
	"context"
	"fmt"

	"github.com/okorolev/skillswap/internal/app/auth"
	"github.com/okorolev/skillswap/internal/app/user"
	"github.com/okorolev/skillswap/internal/infrastructure/logger"
)

type service struct {
	core  Core
	users UserCore
}

type Core interface {
	Login(ctx context.Context, creds auth.Credentials) (user.User, string, error)
	Authenticate(ctx context.Context, token, userIDHeader string) (user.User, error)
}

// UserCore is the registration half of the user domain. Registration
// lives under /auth on the wire but the rules belong to the user core.
type UserCore interface {
	CreateUser(ctx context.Context, req user.CreateUserReq) (user.User, error)
}

func NewService(core Core, users UserCore) *service {
	return &service{core: core, users: users}
}

func (s *service) Register(ctx context.Context, req user.CreateUserReq) (user.User, error) {
	u, err := s.users.CreateUser(ctx, req)
	if err != nil {
		logger.Error(ctx, err).
			Str(user.FieldEmail.String(), req.Email).
			Msg("auth.Service.Register: failed to register user")
		return user.User{}, fmt.Errorf("auth.Service.Register: %w", err)
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, creds auth.Credentials) (user.User, string, error) {
	u, token, err := s.core.Login(ctx, creds)
	if err != nil {
		logger.Error(ctx, err).
			Str(user.FieldEmail.String(), creds.Email).
			Msg("auth.Service.Login: login failed")
		return user.User{}, "", fmt.Errorf("auth.Service.Login: %w", err)
	}

	return u, token, nil
}

func (s *service) Authenticate(ctx context.Context, token, userIDHeader string) (user.User, error) {
	u, err := s.core.Authenticate(ctx, token, userIDHeader)
	if err != nil {
		logger.Error(ctx, err).
			Str(auth.FieldUserID.String(), userIDHeader).
			Msg("auth.Service.Authenticate: authentication failed")
		return user.User{}, fmt.Errorf("auth.Service.Authenticate: %w", err)
	}

	return u, nil
}
