package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Service layers local password accounts over the store. Provider-sourced
// identities go straight through Upsert; local registration generates a
// local_<uuid> id so both kinds share one table.
type Service struct {
	store Store
}

func NewService(store Store) *Service { return &Service{store: store} }

func (s *Service) Register(ctx context.Context, email, password, firstName, lastName string) (*User, error) {
	if _, err := s.store.ByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return s.store.Upsert(ctx, "local_"+uuid.NewString(), Attrs{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
	})
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.store.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u.PasswordHash == "" || !CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
