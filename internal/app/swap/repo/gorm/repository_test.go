//go:build testutil

package gorm

import (
	"os"
	"testing"
	"time"

	"github.com/okorolev/skillswap/internal/app/swap"
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

func testSwap(from, to int64) swap.SwapRequest {
	return swap.SwapRequest{
		FromUserID: from,
		ToUserID:   to,
		FromSkill:  "Cooking",
		ToSkill:    "Web Development",
		Message:    "I'd love to learn web development!",
		Status:     swap.StatusPending,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
}

func TestCreateAndGetSwap(t *testing.T) {
	t.Parallel()
	repo, cleanup := newRepo(t)

	want := testSwap(1, 2)
	created, err := repo.CreateSwap(t.Context(), want)
	require.NoError(t, err)
	require.Positive(t, created.ID)

	got, err := repo.GetSwap(t.Context(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, want.FromUserID, got.FromUserID)
	require.Equal(t, want.ToUserID, got.ToUserID)
	require.Equal(t, want.Status, got.Status)
	require.WithinDuration(t, want.CreatedAt, got.CreatedAt, time.Second)

	_, err = repo.GetSwap(t.Context(), created.ID+1)
	require.ErrorIs(t, err, swap.ErrSwapNotFound())

	// pool closed error
	cleanup()
	_, err = repo.GetSwap(t.Context(), created.ID)
	require.Error(t, err)
}

func TestListByParticipant(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.CreateSwap(t.Context(), testSwap(1, 2))
	require.NoError(t, err)
	_, err = repo.CreateSwap(t.Context(), testSwap(2, 3))
	require.NoError(t, err)
	_, err = repo.CreateSwap(t.Context(), testSwap(3, 4))
	require.NoError(t, err)

	swaps, err := repo.ListByParticipant(t.Context(), 2)
	require.NoError(t, err)
	require.Len(t, swaps, 2)
	require.Greater(t, swaps[1].ID, swaps[0].ID)

	swaps, err = repo.ListByParticipant(t.Context(), 42)
	require.NoError(t, err)
	require.Empty(t, swaps)
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	created, err := repo.CreateSwap(t.Context(), testSwap(1, 2))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(t.Context(), created.ID, swap.StatusAccepted)
	require.NoError(t, err)
	require.Equal(t, swap.StatusAccepted, updated.Status)

	_, err = repo.UpdateStatus(t.Context(), created.ID, swap.StatusRejected)
	require.ErrorIs(t, err, swap.ErrSwapNotPending())

	_, err = repo.UpdateStatus(t.Context(), created.ID+100, swap.StatusAccepted)
	require.ErrorIs(t, err, swap.ErrSwapNotFound())
}
