package user

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

type MemStore struct {
	operatorEmail string

	mu    sync.RWMutex
	users map[string]*User
}

// NewMemStore builds an in-memory user store. operatorEmail (may be empty)
// designates the account auto-promoted to admin at creation.
func NewMemStore(operatorEmail string) *MemStore {
	return &MemStore{
		operatorEmail: strings.ToLower(operatorEmail),
		users:         make(map[string]*User),
	}
}

func (s *MemStore) Upsert(_ context.Context, id string, attrs Attrs) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if u, ok := s.users[id]; ok {
		merge(u, attrs)
		u.UpdatedAt = now
		cp := *u
		return &cp, nil
	}
	u := &User{ID: id, Role: RoleCustomer, CreatedAt: now, UpdatedAt: now}
	merge(u, attrs)
	if len(s.users) == 0 || (s.operatorEmail != "" && strings.EqualFold(u.Email, s.operatorEmail)) {
		u.Role = RoleAdmin
	}
	s.users[id] = u
	cp := *u
	return &cp, nil
}

func (s *MemStore) Get(_ context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemStore) ByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) PatchProfile(_ context.Context, id string, updates Attrs) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	// merge only touches profile fields; id, role, and createdAt are not
	// reachable through Attrs.
	updates.PasswordHash = ""
	merge(u, updates)
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (s *MemStore) SetRole(_ context.Context, id string, role Role) (*User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.Role = role
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (s *MemStore) List(_ context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
