// Package user owns user accounts, roles, and login sessions.
package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("user: not found")
	ErrEmailTaken         = errors.New("user: email already registered")
	ErrInvalidRole        = errors.New("user: invalid role")
	ErrInvalidCredentials = errors.New("user: invalid email or password")
)

type Store interface {
	// Upsert creates the user on first sight or merges non-empty attrs over
	// the existing row. The role is decided only at creation: the first user
	// ever, or a user matching the operator email, becomes admin; everyone
	// else is a customer. Later upserts never touch the role.
	Upsert(ctx context.Context, id string, attrs Attrs) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	ByEmail(ctx context.Context, email string) (*User, error)
	// PatchProfile merges profile fields; id, role, and timestamps cannot be
	// changed through this path (role changes go through SetRole).
	PatchProfile(ctx context.Context, id string, updates Attrs) (*User, error)
	SetRole(ctx context.Context, id string, role Role) (*User, error)
	List(ctx context.Context) ([]User, error)
}

func merge(u *User, a Attrs) {
	if a.Email != "" {
		u.Email = a.Email
	}
	if a.FirstName != "" {
		u.FirstName = a.FirstName
	}
	if a.LastName != "" {
		u.LastName = a.LastName
	}
	if a.Phone != "" {
		u.Phone = a.Phone
	}
	if a.ProfileImageURL != "" {
		u.ProfileImageURL = a.ProfileImageURL
	}
	if a.PasswordHash != "" {
		u.PasswordHash = a.PasswordHash
	}
	if a.ShippingAddress != (Address{}) {
		u.ShippingAddress = a.ShippingAddress
	}
}
