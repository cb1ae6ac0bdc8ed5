package contextx

import (
	"context"
	"errors"
	"fmt"

	"github.com/okorolev/skillswap/internal/infrastructure/apperr"
)

var ErrNotFound = fmt.Errorf("not found in context")

type contextKey string

func (key contextKey) String() string {
	return string(key)
}

const (
	ContextKeyUserID = contextKey("user_id")
)

func getValue[T any](ctx context.Context, key contextKey) (T, error) {
	var zero T

	value := ctx.Value(key)
	if value == nil {
		return zero, fmt.Errorf("key %v: %w", key, ErrNotFound)
	}

	v, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("key %v: wrong format in context, got %T, want %T", key, value, zero)
	}

	return v, nil
}

// GetUserID returns the id of the authenticated caller attached by the auth middleware.
func GetUserID(ctx context.Context) (int64, error) {
	userID, err := getValue[int64](ctx, ContextKeyUserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			err = apperr.ErrUnauthorized().WithDetail("current user ID not found in context")
		}
		return 0, fmt.Errorf("contextx.GetUserID: %w", err)
	}
	if userID <= 0 {
		return 0, fmt.Errorf("contextx.GetUserID: user ID is not positive")
	}

	return userID, nil
}

func SetUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}
