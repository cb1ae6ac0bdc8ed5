package user_test

import (
	"context"
	"strings"
	"testing"

	"github.com/okorolev/skillswap/internal/app/user"
	"github.com/okorolev/skillswap/internal/app/user/repo/mem"
	"github.com/okorolev/skillswap/internal/infrastructure/secure"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userCore interface {
	CreateUser(ctx context.Context, req user.CreateUserReq) (user.User, error)
	GetUser(ctx context.Context, id int64) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
	ListPublicUsers(ctx context.Context) ([]user.User, error)
	UpdateUser(ctx context.Context, req user.UpdateUserReq) (user.User, error)
}

func newTestCore(t *testing.T) userCore {
	t.Helper()

	validator, err := user.NewValidator(user.ValidationConfig{
		MaxEmailLength:    255,
		MaxNameLength:     100,
		MinPasswordLength: 6,
		MaxPasswordLength: 72,
	})
	require.NoError(t, err)

	core, err := user.NewCore(mem.NewRepository(), secure.NewPasswordHasher(), validator,
		user.Config{PasswordHashCost: bcrypt.MinCost})
	require.NoError(t, err)

	return core
}

func TestCore_CreateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	valid := func() user.CreateUserReq {
		return user.CreateUserReq{
			Name:     "Sarah Johnson",
			Email:    "sarah@example.com",
			Password: []byte("password123"),
			Location: "New York, NY",
		}
	}

	t.Run("ok with defaults", func(t *testing.T) {
		t.Parallel()
		core := newTestCore(t)

		created, err := core.CreateUser(ctx, valid())
		require.NoError(t, err)

		require.Positive(t, created.ID)
		require.Equal(t, "Sarah Johnson", created.Name)
		require.Equal(t, "sarah@example.com", created.Email)
		require.Equal(t, user.ProfilePublic, created.Profile)
		require.Zero(t, created.Rating)
		require.Equal(t, []string{}, created.SkillsOffered)
		require.Equal(t, []string{}, created.SkillsWanted)
		require.Empty(t, created.Availability)
		require.Equal(t, user.DefaultAvatarURL("Sarah Johnson"), created.ProfilePhoto)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
	})

	t.Run("provided photo is kept", func(t *testing.T) {
		t.Parallel()
		core := newTestCore(t)

		req := valid()
		req.ProfilePhoto = "data:image/png;base64,abc"
		created, err := core.CreateUser(ctx, req)
		require.NoError(t, err)
		require.Equal(t, "data:image/png;base64,abc", created.ProfilePhoto)
	})

	t.Run("email and name are normalized", func(t *testing.T) {
		t.Parallel()
		core := newTestCore(t)

		req := valid()
		req.Name = "  Sarah Johnson  "
		req.Email = " Sarah@Example.COM "
		created, err := core.CreateUser(ctx, req)
		require.NoError(t, err)
		require.Equal(t, "Sarah Johnson", created.Name)
		require.Equal(t, "sarah@example.com", created.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		core := newTestCore(t)

		_, err := core.CreateUser(ctx, valid())
		require.NoError(t, err)

		req := valid()
		req.Password = []byte("password123")
		_, err = core.CreateUser(ctx, req)
		require.ErrorIs(t, err, user.ErrUserWithEmailAlreadyExists())
	})

	t.Run("validation failures", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			mod  func(r *user.CreateUserReq)
			err  error
		}{
			{
				name: "empty name",
				mod:  func(r *user.CreateUserReq) { r.Name = "   " },
				err:  user.ErrNameEmpty(),
			},
			{
				name: "name too long",
				mod:  func(r *user.CreateUserReq) { r.Name = strings.Repeat("a", 101) },
				err:  user.ErrNameTooLong(100),
			},
			{
				name: "invalid email",
				mod:  func(r *user.CreateUserReq) { r.Email = "not-an-email" },
				err:  user.ErrInvalidEmail(),
			},
			{
				name: "short password",
				mod:  func(r *user.CreateUserReq) { r.Password = []byte("abc") },
				err:  user.ErrPasswordTooShort(6),
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				core := newTestCore(t)

				req := valid()
				tt.mod(&req)
				_, err := core.CreateUser(ctx, req)
				require.ErrorIs(t, err, tt.err)
			})
		}
	})
}

func TestCore_GetUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core := newTestCore(t)

	created, err := core.CreateUser(ctx, user.CreateUserReq{
		Name: "Sarah", Email: "sarah@example.com", Password: []byte("password123"),
	})
	require.NoError(t, err)

	got, err := core.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = core.GetUser(ctx, 9999)
	require.ErrorIs(t, err, user.ErrUserNotFound())

	_, err = core.GetUser(ctx, 0)
	require.Error(t, err)
}

func TestCore_ListPublicUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core := newTestCore(t)

	pub, err := core.CreateUser(ctx, user.CreateUserReq{
		Name: "Public", Email: "public@example.com", Password: []byte("password123"),
	})
	require.NoError(t, err)

	priv, err := core.CreateUser(ctx, user.CreateUserReq{
		Name: "Private", Email: "private@example.com", Password: []byte("password123"),
	})
	require.NoError(t, err)
	_, err = core.UpdateUser(ctx, user.UpdateUserReq{UserID: priv.ID, Profile: user.ProfilePrivate})
	require.NoError(t, err)

	users, err := core.ListPublicUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, pub.ID, users[0].ID)

	// Direct lookup still returns the private profile.
	got, err := core.GetUser(ctx, priv.ID)
	require.NoError(t, err)
	require.Equal(t, user.ProfilePrivate, got.Profile)
}

func TestCore_UpdateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core := newTestCore(t)

	created, err := core.CreateUser(ctx, user.CreateUserReq{
		Name: "Sarah", Email: "sarah@example.com", Password: []byte("password123"),
	})
	require.NoError(t, err)

	updated, err := core.UpdateUser(ctx, user.UpdateUserReq{
		UserID:        created.ID,
		SkillsOffered: []string{"Cooking", "Photography"},
		Availability:  "Weekends",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Cooking", "Photography"}, updated.SkillsOffered)
	require.Equal(t, "Weekends", updated.Availability)
	require.Equal(t, "Sarah", updated.Name)

	_, err = core.UpdateUser(ctx, user.UpdateUserReq{UserID: created.ID, Profile: "friends-only"})
	require.ErrorIs(t, err, user.ErrInvalidProfile())

	_, err = core.UpdateUser(ctx, user.UpdateUserReq{UserID: 9999, Name: "X"})
	require.ErrorIs(t, err, user.ErrUserNotFound())
}
