package port

import (
	"context"

	"cookie-inspector/internal/domain/entity"
)

// UserRepository stores bot users and their dialog state.
type UserRepository interface {
	// Get returns the user by ID, creating a fresh one when not found.
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save persists the user's state.
	Save(ctx context.Context, user *entity.User) error

	// UpdateState updates only the dialog state of an existing user.
	UpdateState(ctx context.Context, userID int64, state entity.UserState) error
}
