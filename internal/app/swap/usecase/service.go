package usecase

import (
	"context"
	"fmt"

	"github.com/okorolev/skillswap/internal/app/swap"
	"github.com/okorolev/skillswap/internal/infrastructure/apperr"
	"github.com/okorolev/skillswap/internal/infrastructure/contextx"
	"github.com/okorolev/skillswap/internal/infrastructure/logger"
)

type service struct {
	core Core
}

type Core interface {
	CreateSwap(ctx context.Context, req swap.CreateSwapReq) (swap.SwapRequest, error)
	ListForUser(ctx context.Context, userID int64) ([]swap.SwapRequest, error)
	UpdateStatus(ctx context.Context, cmd swap.UpdateStatusCmd) (swap.SwapRequest, error)
}

func NewService(core Core) *service {
	return &service{core: core}
}

// CreateSwap files a request on behalf of the authenticated caller. The
// sender id always comes from the context, never from the payload.
func (s *service) CreateSwap(ctx context.Context, req swap.CreateSwapReq) (swap.SwapRequest, error) {
	callerID, err := contextx.GetUserID(ctx)
	if err != nil {
		return swap.SwapRequest{}, fmt.Errorf("swap.Service.CreateSwap: %w", err)
	}
	req.FromUserID = callerID

	created, err := s.core.CreateSwap(ctx, req)
	if err != nil {
		logger.Error(ctx, err).
			Interface(apperr.FieldRequest.String(), req).
			Msg("swap.Service.CreateSwap: failed to create swap request")
		return swap.SwapRequest{}, fmt.Errorf("swap.Service.CreateSwap: %w", err)
	}

	return created, nil
}

func (s *service) ListMySwaps(ctx context.Context) ([]swap.SwapRequest, error) {
	callerID, err := contextx.GetUserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("swap.Service.ListMySwaps: %w", err)
	}

	swaps, err := s.core.ListForUser(ctx, callerID)
	if err != nil {
		logger.Error(ctx, err).
			Int64(swap.FieldUserID.String(), callerID).
			Msg("swap.Service.ListMySwaps: failed to list swaps")
		return nil, fmt.Errorf("swap.Service.ListMySwaps: %w", err)
	}

	return swaps, nil
}

func (s *service) UpdateStatus(ctx context.Context, swapID int64, status swap.Status) (swap.SwapRequest, error) {
	callerID, err := contextx.GetUserID(ctx)
	if err != nil {
		return swap.SwapRequest{}, fmt.Errorf("swap.Service.UpdateStatus: %w", err)
	}

	updated, err := s.core.UpdateStatus(ctx, swap.UpdateStatusCmd{
		SwapID:   swapID,
		CallerID: callerID,
		Status:   status,
	})
	if err != nil {
		logger.Error(ctx, err).
			Int64(swap.FieldSwapID.String(), swapID).
			Str(swap.FieldStatus.String(), string(status)).
			Msg("swap.Service.UpdateStatus: failed to update swap status")
		return swap.SwapRequest{}, fmt.Errorf("swap.Service.UpdateStatus: %w", err)
	}

	return updated, nil
}
