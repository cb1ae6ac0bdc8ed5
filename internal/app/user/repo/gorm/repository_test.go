//go:build testutil

package gorm

import (
	"fmt"
	"os"
	"testing"

	"github.com/okorolev/skillswap/internal/app/user"
	"github.com/okorolev/skillswap/internal/infrastructure/db"
	"github.com/stretchr/testify/require"
)

var shared *db.TestDB

func TestMain(m *testing.M) {
	var stop func()
	shared, stop = db.StartPostgres()
	code := m.Run()
	stop()
	os.Exit(code)
}

func newRepo(t *testing.T) (*gormRepo, func()) {
	gdb, _, cleanup := shared.CreateIsolatedDB(t)
	t.Cleanup(cleanup)
	return NewRepository(gdb), cleanup
}

func testUser(email string) user.User {
	return user.User{
		Name:          "Sarah Johnson",
		Email:         email,
		PasswordHash:  "hash",
		Location:      "New York, NY",
		SkillsOffered: []string{"Web Development", "Photography"},
		SkillsWanted:  []string{"Cooking"},
		Availability:  "Weekends",
		Profile:       user.ProfilePublic,
		Rating:        4.8,
		ProfilePhoto:  "photo",
	}
}

func compareUsers(t *testing.T, want, got user.User) {
	t.Helper()
	want.ID = got.ID
	require.Equal(t, want, got)
}

func TestCreateAndGetUser(t *testing.T) {
	t.Parallel()
	repo, cleanup := newRepo(t)

	want := testUser("sarah@example.com")
	created, err := repo.CreateUser(t.Context(), want)
	require.NoError(t, err)
	require.Positive(t, created.ID)
	compareUsers(t, want, created)

	got, err := repo.GetUser(t.Context(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	got, err = repo.GetUserByEmail(t.Context(), "sarah@example.com")
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = repo.GetUser(t.Context(), created.ID+1)
	require.ErrorIs(t, err, user.ErrUserNotFound())

	// pool closed error
	cleanup()
	_, err = repo.GetUser(t.Context(), created.ID)
	require.Error(t, err)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.CreateUser(t.Context(), testUser("dup@example.com"))
	require.NoError(t, err)

	_, err = repo.CreateUser(t.Context(), testUser("dup@example.com"))
	require.ErrorIs(t, err, user.ErrUserWithEmailAlreadyExists())
}

func TestListUsers(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	const n = 3
	for i := 0; i < n; i++ {
		_, err := repo.CreateUser(t.Context(), testUser(fmt.Sprintf("user%d@example.com", i)))
		require.NoError(t, err)
	}

	users, err := repo.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, n)
	for i := 1; i < n; i++ {
		require.Greater(t, users[i].ID, users[i-1].ID)
	}
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	created, err := repo.CreateUser(t.Context(), testUser("sarah@example.com"))
	require.NoError(t, err)

	updated, err := repo.UpdateUser(t.Context(), user.UpdateUserReq{
		UserID:       created.ID,
		Location:     "Austin, TX",
		SkillsWanted: []string{"Yoga", "Guitar"},
		Profile:      user.ProfilePrivate,
	})
	require.NoError(t, err)

	require.Equal(t, created.Name, updated.Name)
	require.Equal(t, "Austin, TX", updated.Location)
	require.Equal(t, created.SkillsOffered, updated.SkillsOffered)
	require.Equal(t, []string{"Yoga", "Guitar"}, updated.SkillsWanted)
	require.Equal(t, user.ProfilePrivate, updated.Profile)

	// Empty update still resolves the user.
	got, err := repo.UpdateUser(t.Context(), user.UpdateUserReq{UserID: created.ID})
	require.NoError(t, err)
	require.Equal(t, updated, got)

	_, err = repo.UpdateUser(t.Context(), user.UpdateUserReq{UserID: created.ID + 100, Name: "X"})
	require.ErrorIs(t, err, user.ErrUserNotFound())
}
