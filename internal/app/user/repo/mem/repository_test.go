package mem_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/okorolev/skillswap/internal/app/user"
	"github.com/okorolev/skillswap/internal/app/user/repo/mem"
	"github.com/stretchr/testify/require"
)

func newUser(email string) user.User {
	return user.User{
		Name:          "Test User",
		Email:         email,
		PasswordHash:  "hash",
		SkillsOffered: []string{},
		SkillsWanted:  []string{},
		Profile:       user.ProfilePublic,
	}
}

func TestRepository_CreateUser_ConcurrentIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := mem.NewRepository()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := repo.CreateUser(ctx, newUser(fmt.Sprintf("user%d@example.com", i)))
			require.NoError(t, err)
			ids <- u.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		require.Positive(t, id)
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
}

func TestRepository_CreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := mem.NewRepository()

	_, err := repo.CreateUser(ctx, newUser("dup@example.com"))
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, newUser("dup@example.com"))
	require.ErrorIs(t, err, user.ErrUserWithEmailAlreadyExists())
}

func TestRepository_UpdateUser_SkipsEmptyFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := mem.NewRepository()

	created, err := repo.CreateUser(ctx, user.User{
		Name:          "Sarah",
		Email:         "sarah@example.com",
		Location:      "NYC",
		SkillsOffered: []string{"Cooking"},
		SkillsWanted:  []string{"Guitar"},
		Availability:  "Weekends",
		Profile:       user.ProfilePublic,
		ProfilePhoto:  "photo",
	})
	require.NoError(t, err)

	updated, err := repo.UpdateUser(ctx, user.UpdateUserReq{
		UserID:       created.ID,
		Location:     "Austin, TX",
		SkillsWanted: []string{"Yoga", "Guitar"},
	})
	require.NoError(t, err)

	require.Equal(t, "Sarah", updated.Name)
	require.Equal(t, "Austin, TX", updated.Location)
	require.Equal(t, []string{"Cooking"}, updated.SkillsOffered)
	require.Equal(t, []string{"Yoga", "Guitar"}, updated.SkillsWanted)
	require.Equal(t, "Weekends", updated.Availability)
	require.Equal(t, "photo", updated.ProfilePhoto)
}

func TestRepository_UpdateUser_NotFound(t *testing.T) {
	t.Parallel()

	_, err := mem.NewRepository().UpdateUser(context.Background(), user.UpdateUserReq{UserID: 9999, Name: "X"})
	require.ErrorIs(t, err, user.ErrUserNotFound())
}

// Mutating a returned slice must not leak into the store.
func TestRepository_CloneOnRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := mem.NewRepository()

	created, err := repo.CreateUser(ctx, user.User{
		Name:          "Sarah",
		Email:         "sarah@example.com",
		SkillsOffered: []string{"Cooking"},
		SkillsWanted:  []string{},
		Profile:       user.ProfilePublic,
	})
	require.NoError(t, err)

	created.SkillsOffered[0] = "mutated"

	got, err := repo.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Cooking"}, got.SkillsOffered)
}
