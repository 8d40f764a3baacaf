// Package newsletter keeps the subscriber list. Subscribing is an upsert by
// email: re-subscribing an existing address flips the flag back on instead
// of erroring.
package newsletter

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Subscriber struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Subscribed bool      `json:"subscribed"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Store interface {
	Subscribe(ctx context.Context, email string) (*Subscriber, error)
	// Subscribers returns currently subscribed addresses only.
	Subscribers(ctx context.Context) ([]Subscriber, error)
}

type MemStore struct {
	mu   sync.Mutex
	byID map[string]*Subscriber
	ids  []string
}

func NewMemStore() *MemStore {
	return &MemStore{byID: make(map[string]*Subscriber)}
}

func (s *MemStore) Subscribe(_ context.Context, email string) (*Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.ids {
		sub := s.byID[id]
		if strings.EqualFold(sub.Email, email) {
			sub.Subscribed = true
			cp := *sub
			return &cp, nil
		}
	}
	sub := &Subscriber{ID: uuid.NewString(), Email: email, Subscribed: true, CreatedAt: time.Now()}
	s.byID[sub.ID] = sub
	s.ids = append(s.ids, sub.ID)
	cp := *sub
	return &cp, nil
}

func (s *MemStore) Subscribers(_ context.Context) ([]Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []Subscriber{}
	for _, id := range s.ids {
		if sub := s.byID[id]; sub.Subscribed {
			out = append(out, *sub)
		}
	}
	return out, nil
}
