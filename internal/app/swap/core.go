package swap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okorolev/skillswap/internal/infrastructure/apperr"
)

type Repository interface {
	CreateSwap(ctx context.Context, req SwapRequest) (SwapRequest, error)
	GetSwap(ctx context.Context, id int64) (SwapRequest, error)
	ListByParticipant(ctx context.Context, userID int64) ([]SwapRequest, error)
	// UpdateStatus moves a pending swap to the given status. The pending
	// check is repeated inside the store's own exclusion boundary.
	UpdateStatus(ctx context.Context, id int64, status Status) (SwapRequest, error)
}

type TimeGenerator interface {
	Now() time.Time
}

type core struct {
	repo          Repository
	timeGenerator TimeGenerator
}

func NewCore(repo Repository, timeGenerator TimeGenerator) *core {
	if repo == nil || timeGenerator == nil {
		panic("swap.core: nil dependency")
	}

	return &core{repo: repo, timeGenerator: timeGenerator}
}

// CreateSwap records a new pending request. The recipient id is not
// checked against the user store; requests to unknown users are allowed
// and simply never answered.
func (c *core) CreateSwap(ctx context.Context, req CreateSwapReq) (SwapRequest, error) {
	if req.FromUserID <= 0 {
		return SwapRequest{}, fmt.Errorf("swap.core.CreateSwap: %w", apperr.ErrInvalidID(FieldUserID))
	}
	if req.ToUserID <= 0 {
		return SwapRequest{}, fmt.Errorf("swap.core.CreateSwap: %w", ErrToUserRequired())
	}
	if strings.TrimSpace(req.FromSkill) == "" {
		return SwapRequest{}, fmt.Errorf("swap.core.CreateSwap: %w", ErrFromSkillRequired())
	}
	if strings.TrimSpace(req.ToSkill) == "" {
		return SwapRequest{}, fmt.Errorf("swap.core.CreateSwap: %w", ErrToSkillRequired())
	}

	created, err := c.repo.CreateSwap(ctx, SwapRequest{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		FromSkill:  req.FromSkill,
		ToSkill:    req.ToSkill,
		Message:    req.Message,
		Status:     StatusPending,
		CreatedAt:  c.timeGenerator.Now(),
	})
	if err != nil {
		return SwapRequest{}, fmt.Errorf("swap.core.CreateSwap: %w", err)
	}

	return created, nil
}

// ListForUser returns every swap the user participates in, as sender or
// recipient. Swaps between other members are never visible.
func (c *core) ListForUser(ctx context.Context, userID int64) ([]SwapRequest, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("swap.core.ListForUser: %w", apperr.ErrInvalidID(FieldUserID))
	}

	swaps, err := c.repo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("swap.core.ListForUser: %w", err)
	}

	return swaps, nil
}

// UpdateStatus resolves a pending swap. Only the recipient may resolve,
// only to accepted or rejected, and only once.
func (c *core) UpdateStatus(ctx context.Context, cmd UpdateStatusCmd) (SwapRequest, error) {
	if cmd.SwapID <= 0 {
		return SwapRequest{}, fmt.Errorf("swap.core.UpdateStatus: %w", apperr.ErrInvalidID(FieldSwapID))
	}
	switch cmd.Status {
	case StatusAccepted, StatusRejected:
	default:
		return SwapRequest{}, fmt.Errorf("swap.core.UpdateStatus: %w", ErrInvalidStatus())
	}

	s, err := c.repo.GetSwap(ctx, cmd.SwapID)
	if err != nil {
		return SwapRequest{}, fmt.Errorf("swap.core.UpdateStatus: %w", err)
	}
	if s.ToUserID != cmd.CallerID {
		return SwapRequest{}, fmt.Errorf("swap.core.UpdateStatus: %w", ErrNotAuthorized())
	}
	if s.Status != StatusPending {
		return SwapRequest{}, fmt.Errorf("swap.core.UpdateStatus: %w", ErrSwapNotPending())
	}

	updated, err := c.repo.UpdateStatus(ctx, cmd.SwapID, cmd.Status)
	if err != nil {
		return SwapRequest{}, fmt.Errorf("swap.core.UpdateStatus: %w", err)
	}

	return updated, nil
}
