package service

import (
	"context"

	"github.com/flockhq/flock/internal/members/domain"
	"github.com/flockhq/flock/internal/members/store"
)

// UserService reads and mutates existing accounts. It never creates
// users; that is registration's job.
type UserService struct {
	Store store.Store
}

// List returns the projected member directory (no hashes).
func (s *UserService) List(ctx context.Context) ([]domain.UserSummary, error) {
	return s.Store.Users().ListUserSummaries(ctx)
}

// Get returns the hydrated aggregate for one user.
func (s *UserService) Get(ctx context.Context, id string) (domain.UserDetail, error) {
	return s.Store.Users().GetUserDetailByID(ctx, id)
}

// Resolve checks that a token subject still maps to a live account. The
// identity guard fails closed on store.ErrNotFound.
func (s *UserService) Resolve(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// Update changes the username and/or role of an account.
func (s *UserService) Update(ctx context.Context, id, username, roleID string) (domain.UserDetail, error) {
	if err := s.Store.Users().UpdateUser(ctx, id, username, roleID); err != nil {
		return domain.UserDetail{}, err
	}
	return s.Store.Users().GetUserDetailByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.Store.Users().DeleteUser(ctx, id)
}
