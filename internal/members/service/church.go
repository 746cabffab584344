package service

import (
	"context"

	"github.com/flockhq/flock/internal/members/domain"
	"github.com/flockhq/flock/internal/members/store"
	"github.com/flockhq/flock/pkg/idx"
)

type ChurchService struct {
	Store store.Store
}

// Create inserts a new church. The unique index surfaces a duplicate
// name as store.ErrAlreadyExists.
func (s *ChurchService) Create(ctx context.Context, name string) (domain.Church, error) {
	church := domain.Church{
		ID:   idx.New().String(),
		Name: name,
	}
	if err := s.Store.Churches().CreateChurch(ctx, church); err != nil {
		return domain.Church{}, err
	}
	return s.Store.Churches().GetChurchByID(ctx, church.ID)
}

func (s *ChurchService) List(ctx context.Context) ([]domain.Church, error) {
	return s.Store.Churches().ListChurches(ctx)
}

func (s *ChurchService) Get(ctx context.Context, id string) (domain.Church, error) {
	return s.Store.Churches().GetChurchByID(ctx, id)
}

// Rename is the only mutation a church supports once created.
func (s *ChurchService) Rename(ctx context.Context, id, name string) (domain.Church, error) {
	if err := s.Store.Churches().RenameChurch(ctx, id, name); err != nil {
		return domain.Church{}, err
	}
	return s.Store.Churches().GetChurchByID(ctx, id)
}

func (s *ChurchService) Delete(ctx context.Context, id string) error {
	return s.Store.Churches().DeleteChurch(ctx, id)
}
