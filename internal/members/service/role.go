package service

import (
	"context"

	"github.com/flockhq/flock/internal/members/domain"
	"github.com/flockhq/flock/internal/members/store"
	"github.com/flockhq/flock/pkg/idx"
)

type RoleService struct {
	Store store.Store
}

func (s *RoleService) Create(ctx context.Context, r domain.Role) (domain.Role, error) {
	r.ID = idx.New().String()
	if err := s.Store.Roles().CreateRole(ctx, r); err != nil {
		return domain.Role{}, err
	}
	return s.Store.Roles().GetRoleByID(ctx, r.ID)
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListRoles(ctx)
}

func (s *RoleService) Get(ctx context.Context, id string) (domain.Role, error) {
	return s.Store.Roles().GetRoleByID(ctx, id)
}

func (s *RoleService) Update(ctx context.Context, r domain.Role) (domain.Role, error) {
	if err := s.Store.Roles().UpdateRole(ctx, r); err != nil {
		return domain.Role{}, err
	}
	return s.Store.Roles().GetRoleByID(ctx, r.ID)
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	return s.Store.Roles().DeleteRole(ctx, id)
}
