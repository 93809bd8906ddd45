package app

import (
	"context"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/domain/port"
)

// UserService drives the bot user's dialog state.
type UserService struct {
	repo port.UserRepository
}

// NewUserService creates the service.
func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Get returns the user, creating one on first contact.
func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

// SetState moves the user to the given state and persists it.
func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.SetState(state)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// BeginCheck starts a cookie check: the bot waits for a photo.
func (s *UserService) BeginCheck(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

// Cancel returns the user to the main menu.
func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}
