// Package mem is the in-memory swap store, sharing the locking and
// id-assignment discipline of the user store.
package mem

import (
	"context"
	"fmt"
	"sync"

	"github.com/okorolev/skillswap/internal/app/swap"
)

type Repository struct {
	mu     sync.RWMutex
	nextID int64
	swaps  []swap.SwapRequest
}

func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

func (r *Repository) CreateSwap(_ context.Context, s swap.SwapRequest) (swap.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.swaps = append(r.swaps, s)

	return s, nil
}

func (r *Repository) GetSwap(_ context.Context, id int64) (swap.SwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.swaps {
		if s.ID == id {
			return s, nil
		}
	}

	return swap.SwapRequest{}, fmt.Errorf("mem.Repository.GetSwap: %w", swap.ErrSwapNotFound())
}

// ListByParticipant returns swaps where the user is sender or recipient,
// in insertion order.
func (r *Repository) ListByParticipant(_ context.Context, userID int64) ([]swap.SwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	swaps := make([]swap.SwapRequest, 0)
	for _, s := range r.swaps {
		if s.FromUserID == userID || s.ToUserID == userID {
			swaps = append(swaps, s)
		}
	}

	return swaps, nil
}

func (r *Repository) UpdateStatus(_ context.Context, id int64, status swap.Status) (swap.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.swaps {
		if r.swaps[i].ID != id {
			continue
		}
		if r.swaps[i].Status != swap.StatusPending {
			return swap.SwapRequest{}, fmt.Errorf("mem.Repository.UpdateStatus: %w", swap.ErrSwapNotPending())
		}

		r.swaps[i].Status = status

		return r.swaps[i], nil
	}

	return swap.SwapRequest{}, fmt.Errorf("mem.Repository.UpdateStatus: %w", swap.ErrSwapNotFound())
}
