package ctxtr

import (
	"context"
	"errors"
	"net/http"
)

type ctxKey string

const UserIDKey ctxKey = "user_id"

var ErrUserNotFound = errors.New("user not found")

// UserResolver identifies the caller of an HTTP request.
type UserResolver interface {
	ResolveUser(r *http.Request) (int64, error)
}

// MockUser resolves every request to the same user id.
type MockUser int64

func (m MockUser) ResolveUser(*http.Request) (int64, error) {
	return int64(m), nil
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func UserID(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	if !ok {
		return 0, ErrUserNotFound
	}

	return userID, nil
}
