package mem_test

import (
	"context"
	"sync"
	"testing"

	"github.com/okorolev/skillswap/internal/app/swap"
	"github.com/okorolev/skillswap/internal/app/swap/repo/mem"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateSwap_ConcurrentIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := mem.NewRepository()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := repo.CreateSwap(ctx, swap.SwapRequest{
				FromUserID: 1, ToUserID: 2, FromSkill: "a", ToSkill: "b", Status: swap.StatusPending,
			})
			require.NoError(t, err)
			ids <- s.ID
		}()
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

func TestRepository_UpdateStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := mem.NewRepository()

	s, err := repo.CreateSwap(ctx, swap.SwapRequest{
		FromUserID: 1, ToUserID: 2, FromSkill: "a", ToSkill: "b", Status: swap.StatusPending,
	})
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, s.ID, swap.StatusAccepted)
	require.NoError(t, err)
	require.Equal(t, swap.StatusAccepted, updated.Status)

	_, err = repo.UpdateStatus(ctx, s.ID, swap.StatusRejected)
	require.ErrorIs(t, err, swap.ErrSwapNotPending())

	_, err = repo.UpdateStatus(ctx, 9999, swap.StatusAccepted)
	require.ErrorIs(t, err, swap.ErrSwapNotFound())
}

func TestRepository_ListByParticipant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := mem.NewRepository()

	seed := []swap.SwapRequest{
		{FromUserID: 1, ToUserID: 2, FromSkill: "a", ToSkill: "b", Status: swap.StatusPending},
		{FromUserID: 2, ToUserID: 3, FromSkill: "c", ToSkill: "d", Status: swap.StatusPending},
		{FromUserID: 3, ToUserID: 1, FromSkill: "e", ToSkill: "f", Status: swap.StatusPending},
	}
	for _, s := range seed {
		_, err := repo.CreateSwap(ctx, s)
		require.NoError(t, err)
	}

	swaps, err := repo.ListByParticipant(ctx, 2)
	require.NoError(t, err)
	require.Len(t, swaps, 2)
	require.Equal(t, int64(1), swaps[0].ID)
	require.Equal(t, int64(2), swaps[1].ID)
}
