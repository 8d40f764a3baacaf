package order

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemStore struct {
	mu     sync.RWMutex
	orders map[string]*Order
	items  map[string][]Item // keyed by order id
}

func NewMemStore() *MemStore {
	return &MemStore{
		orders: make(map[string]*Order),
		items:  make(map[string][]Item),
	}
}

func (s *MemStore) Create(_ context.Context, o *Order, items []Item) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}
	if !o.Status.Valid() {
		return ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	cp := *o
	s.orders[cp.ID] = &cp

	stored := make([]Item, len(items))
	for i, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		it.OrderID = cp.ID
		stored[i] = it
		items[i] = it
	}
	s.items[cp.ID] = stored
	return nil
}

func (s *MemStore) Get(_ context.Context, id string) (*Order, []Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, nil, ErrNotFound
	}
	cp := *o
	return &cp, append([]Item(nil), s.items[id]...), nil
}

func (s *MemStore) ByPaymentIntent(_ context.Context, intentID string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.PaymentIntentID == intentID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) ListByUser(_ context.Context, userID string) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *MemStore) ListAll(_ context.Context) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *o)
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *MemStore) UpdateStatus(_ context.Context, id string, next Status, tracking string) (*Order, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !o.Status.CanTransition(next) {
		return nil, ErrInvalidTransition
	}
	o.Status = next
	if tracking != "" {
		o.TrackingNumber = tracking
	}
	o.UpdatedAt = time.Now()
	cp := *o
	return &cp, nil
}

func sortNewestFirst(orders []Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
