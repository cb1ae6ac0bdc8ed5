package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/okorolev/skillswap/internal/app/user"
	"github.com/okorolev/skillswap/internal/infrastructure/apperr"
	"github.com/okorolev/skillswap/internal/infrastructure/httpx"
	"github.com/okorolev/skillswap/internal/infrastructure/logger"
)

const (
	URLParamUserID = "user_id"
)

type UpdateUserInput struct {
	Name          string       `json:"name"`
	Location      string       `json:"location"`
	SkillsOffered []string     `json:"skillsOffered"`
	SkillsWanted  []string     `json:"skillsWanted"`
	Availability  string       `json:"availability"`
	Profile       user.Profile `json:"profile"`
	ProfilePhoto  string       `json:"profilePhoto"`
}

// Handler knows how to decode HTTP → service calls and encode responses.
type Handler struct {
	svc Service
}

type Service interface {
	GetUser(ctx context.Context, id int64) (user.User, error)
	ListPublicUsers(ctx context.Context) ([]user.User, error)
	UpdateUser(ctx context.Context, req user.UpdateUserReq) (user.User, error)
}

func NewHandler(svc Service) *Handler {
	if svc == nil {
		panic("user HTTP handler: nil service")
	}
	return &Handler{svc: svc}
}

// ListUsers godoc
// @Summary      List public users
// @Description  Returns every user whose profile is public. No pagination.
// @Tags         users
// @Produce      json
// @Success      200 {array} user.User
// @Failure      default {object} apperr.appError "Error"
// @Router       /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.svc.ListPublicUsers(ctx)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, users)
}

// GetUser godoc
// @Summary      Get user by ID
// @Description  Returns a single user by ID. Private profiles are still reachable by direct link.
// @Tags         users
// @Produce      json
// @Param        user_id path int true "User ID"
// @Success      200 {object} user.User
// @Failure      default {object} apperr.appError "Error"
// @Router       /users/{user_id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, URLParamUserID)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logger.Warn(ctx, err).Str(user.FieldUserID.String(), idStr).
			Msg("user.Handler.GetUser: invalid user ID format")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	usr, err := h.svc.GetUser(ctx, id)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, usr)
}

// UpdateUser godoc
// @Summary      Update user profile
// @Description  Overwrites the provided fields of the target profile. Empty fields are left unchanged.
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        user_id path int true "User ID"
// @Param        request body UpdateUserInput true "Update payload"
// @Success      200 {object} user.User
// @Failure      default {object} apperr.appError "Error"
// @Router       /users/{user_id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, URLParamUserID)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logger.Warn(ctx, err).Str(user.FieldUserID.String(), idStr).
			Msg("user.Handler.UpdateUser: invalid user ID format")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	var in UpdateUserInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		logger.Error(ctx, err).
			Msg("user.Handler.UpdateUser: request json decode failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	usr, err := h.svc.UpdateUser(ctx, user.UpdateUserReq{
		UserID:        id,
		Name:          in.Name,
		Location:      in.Location,
		SkillsOffered: in.SkillsOffered,
		SkillsWanted:  in.SkillsWanted,
		Availability:  in.Availability,
		Profile:       in.Profile,
		ProfilePhoto:  in.ProfilePhoto,
	})
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, usr)
}
