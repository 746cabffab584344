package service

import (
	"context"

	"github.com/flockhq/flock/internal/members/domain"
	"github.com/flockhq/flock/internal/members/store"
	"github.com/flockhq/flock/pkg/idx"
)

type PersonService struct {
	Store store.Store
}

// Create inserts a standalone person record (profile data without an
// account). Registration creates its own person through AuthService.
func (s *PersonService) Create(ctx context.Context, p domain.Person) (domain.Person, error) {
	p.ID = idx.New().String()
	if err := s.Store.Persons().CreatePerson(ctx, p); err != nil {
		return domain.Person{}, err
	}
	return s.Store.Persons().GetPersonByID(ctx, p.ID)
}

func (s *PersonService) List(ctx context.Context) ([]domain.Person, error) {
	return s.Store.Persons().ListPersons(ctx)
}

func (s *PersonService) Get(ctx context.Context, id string) (domain.Person, error) {
	return s.Store.Persons().GetPersonByID(ctx, id)
}

func (s *PersonService) Update(ctx context.Context, p domain.Person) (domain.Person, error) {
	if err := s.Store.Persons().UpdatePerson(ctx, p); err != nil {
		return domain.Person{}, err
	}
	return s.Store.Persons().GetPersonByID(ctx, p.ID)
}

func (s *PersonService) Delete(ctx context.Context, id string) error {
	return s.Store.Persons().DeletePerson(ctx, id)
}
