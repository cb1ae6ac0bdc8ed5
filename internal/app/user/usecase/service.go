package usecase

import (
	"context"
	"fmt"

	"github.com/okorolev/skillswap/internal/app/user"
	"github.com/okorolev/skillswap/internal/infrastructure/apperr"
	"github.com/okorolev/skillswap/internal/infrastructure/logger"
)

type service struct {
	core Core
}

type Core interface {
	CreateUser(ctx context.Context, req user.CreateUserReq) (user.User, error)
	GetUser(ctx context.Context, id int64) (user.User, error)
	ListPublicUsers(ctx context.Context) ([]user.User, error)
	UpdateUser(ctx context.Context, req user.UpdateUserReq) (user.User, error)
}

func NewService(core Core) *service {
	return &service{core: core}
}

func (s *service) CreateUser(ctx context.Context, req user.CreateUserReq) (user.User, error) {
	u, err := s.core.CreateUser(ctx, req)
	if err != nil {
		logger.Error(ctx, err).
			Str(user.FieldEmail.String(), req.Email).
			Str(user.FieldName.String(), req.Name).
			Msg("user.Service.CreateUser: failed to create user")
		return user.User{}, fmt.Errorf("user.Service.CreateUser: %w", err)
	}

	return u, nil
}

func (s *service) GetUser(ctx context.Context, id int64) (user.User, error) {
	u, err := s.core.GetUser(ctx, id)
	if err != nil {
		logger.Error(ctx, err).
			Int64(user.FieldUserID.String(), id).
			Msg("user.Service.GetUser: failed to get user")
		return user.User{}, fmt.Errorf("user.Service.GetUser: %w", err)
	}
	return u, nil
}

func (s *service) ListPublicUsers(ctx context.Context) ([]user.User, error) {
	users, err := s.core.ListPublicUsers(ctx)
	if err != nil {
		logger.Error(ctx, err).Msg("user.Service.ListPublicUsers: failed to list users")
		return nil, fmt.Errorf("user.Service.ListPublicUsers: %w", err)
	}
	return users, nil
}

// UpdateUser applies a partial profile update. The gate guarantees the
// caller exists but not that the caller owns the target id; the original
// contract allows any authenticated user to edit any profile.
func (s *service) UpdateUser(ctx context.Context, req user.UpdateUserReq) (user.User, error) {
	u, err := s.core.UpdateUser(ctx, req)
	if err != nil {
		logger.Error(ctx, err).
			Interface(apperr.FieldRequest.String(), req).
			Msg("user.Service.UpdateUser: failed to update user")
		return user.User{}, fmt.Errorf("user.Service.UpdateUser: %w", err)
	}
	return u, nil
}
