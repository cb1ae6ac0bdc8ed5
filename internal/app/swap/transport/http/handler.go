package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/okorolev/skillswap/internal/app/swap"
	"github.com/okorolev/skillswap/internal/infrastructure/apperr"
	"github.com/okorolev/skillswap/internal/infrastructure/httpx"
	"github.com/okorolev/skillswap/internal/infrastructure/logger"
)

const (
	URLParamSwapID = "swap_id"
)

type CreateSwapInput struct {
	ToUserID  int64  `json:"toUserId"`
	FromSkill string `json:"fromSkill"`
	ToSkill   string `json:"toSkill"`
	Message   string `json:"message"`
}

type UpdateStatusInput struct {
	Status swap.Status `json:"status"`
}

type Service interface {
	CreateSwap(ctx context.Context, req swap.CreateSwapReq) (swap.SwapRequest, error)
	ListMySwaps(ctx context.Context) ([]swap.SwapRequest, error)
	UpdateStatus(ctx context.Context, swapID int64, status swap.Status) (swap.SwapRequest, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	if svc == nil {
		panic("swap HTTP handler: nil service")
	}
	return &Handler{svc: svc}
}

// ListMySwaps godoc
// @Summary      List the caller's swap requests
// @Description  Returns every swap where the caller is sender or recipient.
// @Tags         swaps
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} swap.SwapRequest
// @Failure      default {object} apperr.appError "Error"
// @Router       /swaps [get]
func (h *Handler) ListMySwaps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	swaps, err := h.svc.ListMySwaps(ctx)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, swaps)
}

// CreateSwap godoc
// @Summary      Create a swap request
// @Description  Files a pending request from the caller to another user.
// @Tags         swaps
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body CreateSwapInput true "Swap payload"
// @Success      201 {object} swap.SwapRequest
// @Failure      default {object} apperr.appError "Error"
// @Router       /swaps [post]
func (h *Handler) CreateSwap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in CreateSwapInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		logger.Error(ctx, err).
			Msg("swap.Handler.CreateSwap: request json decode failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	created, err := h.svc.CreateSwap(ctx, swap.CreateSwapReq{
		ToUserID:  in.ToUserID,
		FromSkill: in.FromSkill,
		ToSkill:   in.ToSkill,
		Message:   in.Message,
	})
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusCreated, created)
}

// UpdateStatus godoc
// @Summary      Accept or reject a swap request
// @Description  Resolves a pending request. Only the recipient may resolve it, and only once.
// @Tags         swaps
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        swap_id path int true "Swap ID"
// @Param        request body UpdateStatusInput true "New status"
// @Success      200 {object} swap.SwapRequest
// @Failure      default {object} apperr.appError "Error"
// @Router       /swaps/{swap_id} [put]
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, URLParamSwapID)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logger.Warn(ctx, err).Str(swap.FieldSwapID.String(), idStr).
			Msg("swap.Handler.UpdateStatus: invalid swap ID format")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	var in UpdateStatusInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		logger.Error(ctx, err).
			Msg("swap.Handler.UpdateStatus: request json decode failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	updated, err := h.svc.UpdateStatus(ctx, id, in.Status)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, updated)
}
