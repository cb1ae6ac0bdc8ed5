// Package mem is the in-memory user store. It is the default backend:
// process-lifetime state guarded by a single lock, ids handed out by a
// monotonic counter so concurrent registrations cannot collide.
package mem

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/okorolev/skillswap/internal/app/user"
)

type Repository struct {
	mu     sync.RWMutex
	nextID int64
	users  []user.User
}

func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

func (r *Repository) CreateUser(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.User{}, fmt.Errorf("mem.Repository.CreateUser: %w", user.ErrUserWithEmailAlreadyExists())
		}
	}

	u.ID = r.nextID
	r.nextID++
	r.users = append(r.users, cloneUser(u))

	return cloneUser(u), nil
}

func (r *Repository) GetUser(_ context.Context, id int64) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}

	return user.User{}, fmt.Errorf("mem.Repository.GetUser: %w", user.ErrUserNotFound())
}

func (r *Repository) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}

	return user.User{}, fmt.Errorf("mem.Repository.GetUserByEmail: %w", user.ErrUserNotFound())
}

// ListUsers returns every stored user in insertion order.
func (r *Repository) ListUsers(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]user.User, len(r.users))
	for i, u := range r.users {
		users[i] = cloneUser(u)
	}

	return users, nil
}

// UpdateUser overwrites the provided fields only. Empty strings and
// empty lists count as "not provided" and never clear a stored value.
func (r *Repository) UpdateUser(_ context.Context, req user.UpdateUserReq) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != req.UserID {
			continue
		}

		u := &r.users[i]
		if req.Name != "" {
			u.Name = req.Name
		}
		if req.Location != "" {
			u.Location = req.Location
		}
		if len(req.SkillsOffered) > 0 {
			u.SkillsOffered = slices.Clone(req.SkillsOffered)
		}
		if len(req.SkillsWanted) > 0 {
			u.SkillsWanted = slices.Clone(req.SkillsWanted)
		}
		if req.Availability != "" {
			u.Availability = req.Availability
		}
		if req.Profile != "" {
			u.Profile = req.Profile
		}
		if req.ProfilePhoto != "" {
			u.ProfilePhoto = req.ProfilePhoto
		}

		return cloneUser(*u), nil
	}

	return user.User{}, fmt.Errorf("mem.Repository.UpdateUser: %w", user.ErrUserNotFound())
}

func cloneUser(u user.User) user.User {
	u.SkillsOffered = slices.Clone(u.SkillsOffered)
	u.SkillsWanted = slices.Clone(u.SkillsWanted)
	return u
}
