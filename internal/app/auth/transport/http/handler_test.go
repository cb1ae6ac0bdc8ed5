package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/okorolev/skillswap/internal/app/auth"
	auth_http "github.com/okorolev/skillswap/internal/app/auth/transport/http"
	"github.com/okorolev/skillswap/internal/app/auth/usecase"
	"github.com/okorolev/skillswap/internal/app/user"
	usermem "github.com/okorolev/skillswap/internal/app/user/repo/mem"
	"github.com/okorolev/skillswap/internal/infrastructure/secure"
	"github.com/okorolev/skillswap/internal/infrastructure/system"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	validator, err := user.NewValidator(user.ValidationConfig{
		MaxEmailLength:    255,
		MaxNameLength:     100,
		MinPasswordLength: 6,
		MaxPasswordLength: 72,
	})
	require.NoError(t, err)

	hasher := secure.NewPasswordHasher()
	userCore, err := user.NewCore(usermem.NewRepository(), hasher, validator, user.Config{PasswordHashCost: bcrypt.MinCost})
	require.NoError(t, err)

	authCore := auth.NewCore(userCore, hasher, secure.NewTokenCodec([]byte("testsecret")),
		&system.UUIDv7Generator{}, &system.TimeGenerator{},
		auth.Config{Mode: auth.ModeLegacy, AccessTokenTTLMinutes: 15})
	handler := auth_http.NewHandler(usecase.NewService(authCore, userCore))

	r := chi.NewRouter()
	r.Post("/auth/register", handler.Register)
	r.Post("/auth/login", handler.Login)

	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/auth/register",
			`{"name":"Emma Davis","email":"emma@example.com","password":"password123","location":"Austin, TX"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotContains(t, rec.Body.String(), `"password"`)

		var resp auth_http.RegisterResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "User registered successfully", resp.Message)
		require.Equal(t, "Emma Davis", resp.User.Name)
		require.Equal(t, "emma@example.com", resp.User.Email)
		require.Equal(t, user.ProfilePublic, resp.User.Profile)
		require.Zero(t, resp.User.Rating)
		require.Empty(t, resp.User.SkillsOffered)
		require.Empty(t, resp.User.SkillsWanted)
		require.Equal(t, user.DefaultAvatarURL("Emma Davis"), resp.User.ProfilePhoto)
		require.Positive(t, resp.User.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		body := `{"name":"Emma Davis","email":"emma@example.com","password":"password123"}`
		rec := doJSON(t, router, http.MethodPost, "/auth/register", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/auth/register", body)
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), `"message":"User already exists"`)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/auth/register",
			`{"name":"Emma Davis","email":"not-an-email","password":"password123"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/auth/register",
			`{"name":"Emma Davis","email":"emma@example.com","password":"abc"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Password must be at least")
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/auth/register", `{"name":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	register := func(t *testing.T, router http.Handler) user.User {
		t.Helper()
		rec := doJSON(t, router, http.MethodPost, "/auth/register",
			`{"name":"Emma Davis","email":"emma@example.com","password":"password123"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		var resp auth_http.RegisterResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp.User
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)
		u := register(t, router)

		rec := doJSON(t, router, http.MethodPost, "/auth/login",
			`{"email":"emma@example.com","password":"password123"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotContains(t, rec.Body.String(), `"password"`)

		var resp auth_http.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Login successful", resp.Message)
		require.Equal(t, u, resp.User)
		require.Equal(t, strconv.FormatInt(u.ID, 10), resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)
		register(t, router)

		rec := doJSON(t, router, http.MethodPost, "/auth/login",
			`{"email":"emma@example.com","password":"wrongpassword"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), `"message":"Invalid credentials"`)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/auth/login",
			`{"email":"nobody@example.com","password":"password123"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), `"message":"Invalid credentials"`)
	})
}
