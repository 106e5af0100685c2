package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/linkly/linkly-ui/internal/domain/model"
	"github.com/linkly/linkly-ui/internal/ports"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	API    ports.Client
	Logger *slog.Logger
}

// UserService wraps account management. Authorization is enforced server-side;
// the guard only decides whether the users destination is reachable at all.
type UserService struct {
	api    ports.Client
	logger *slog.Logger

	mu      sync.RWMutex
	lastErr string
}

// NewUserService constructs a UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{api: opts.API, logger: logger}
}

// LastError returns the user-facing message from the most recent failure.
func (s *UserService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *UserService) setError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

// FetchUsers lists managed accounts.
func (s *UserService) FetchUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		s.setError(userMessage(err, "Failed to fetch users"))
		return nil, err
	}
	s.setError("")
	return users, nil
}

// CreateUser creates a managed account.
func (s *UserService) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	user, err := s.api.CreateUser(ctx, req)
	if err != nil {
		s.setError(userMessage(err, "Failed to create user"))
		return model.User{}, err
	}
	s.setError("")
	return user, nil
}

// UpdateUser updates a managed account.
func (s *UserService) UpdateUser(ctx context.Context, id string, req model.CreateUserRequest) (model.User, error) {
	user, err := s.api.UpdateUser(ctx, id, req)
	if err != nil {
		s.setError(userMessage(err, "Failed to update user"))
		return model.User{}, err
	}
	s.setError("")
	return user, nil
}

// DeleteUser removes a managed account.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		s.setError(userMessage(err, "Failed to delete user"))
		return err
	}
	s.setError("")
	return nil
}
