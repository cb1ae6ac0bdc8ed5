package http

import (
	"context"
	"net/http"

	"github.com/okorolev/skillswap/internal/app/auth"
	"github.com/okorolev/skillswap/internal/app/user"
	"github.com/okorolev/skillswap/internal/infrastructure/apperr"
	"github.com/okorolev/skillswap/internal/infrastructure/httpx"
	"github.com/okorolev/skillswap/internal/infrastructure/logger"
)

const (
	msgRegistered = "User registered successfully"
	msgLoggedIn   = "Login successful"
)

type AuthService interface {
	Register(ctx context.Context, req user.CreateUserReq) (user.User, error)
	Login(ctx context.Context, creds auth.Credentials) (user.User, string, error)
}

type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Location     string `json:"location"`
	ProfilePhoto string `json:"profilePhoto"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User    user.User `json:"user"`
	Message string    `json:"message"`
}

type LoginResponse struct {
	User    user.User `json:"user"`
	Token   string    `json:"token"`
	Message string    `json:"message"`
}

type Handler struct {
	svc AuthService
}

func NewHandler(svc AuthService) *Handler {
	if svc == nil {
		panic("nil AuthService")
	}
	return &Handler{svc: svc}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates an account. New profiles start public with empty skill lists and a zero rating.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterInput true "Registration payload"
// @Success      201 {object} RegisterResponse
// @Failure      default {object} apperr.appError "Error"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in RegisterInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		logger.Error(ctx, err).
			Msg("auth.Handler.Register: request json decode failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	u, err := h.svc.Register(ctx, user.CreateUserReq{
		Name:         in.Name,
		Email:        in.Email,
		Password:     []byte(in.Password),
		Location:     in.Location,
		ProfilePhoto: in.ProfilePhoto,
	})
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusCreated, RegisterResponse{User: u, Message: msgRegistered})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns the user together with a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginInput true "Credentials"
// @Success      200 {object} LoginResponse
// @Failure      default {object} apperr.appError "Error"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in LoginInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		logger.Error(ctx, err).
			Msg("auth.Handler.Login: request json decode failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	u, token, err := h.svc.Login(ctx, auth.Credentials{
		Email:    in.Email,
		Password: []byte(in.Password),
	})
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, LoginResponse{User: u, Token: token, Message: msgLoggedIn})
}
