package cart

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/toteworks/storefront/internal/catalog"
)

// MemStore keeps cart rows in memory, hydrating products from the catalog on
// every read. The whole check-then-increment of AddItem runs under the write
// lock so concurrent adds of the same product cannot lose an increment.
type MemStore struct {
	catalog catalog.Store

	mu    sync.RWMutex
	items map[string]*Item
	order []string // item ids in insertion order
}

func NewMemStore(cat catalog.Store) *MemStore {
	return &MemStore{catalog: cat, items: make(map[string]*Item)}
}

func (s *MemStore) Items(ctx context.Context, sessionID string) ([]ItemWithProduct, error) {
	s.mu.RLock()
	rows := make([]Item, 0, 4)
	for _, id := range s.order {
		if it, ok := s.items[id]; ok && it.SessionID == sessionID {
			rows = append(rows, *it)
		}
	}
	s.mu.RUnlock()

	out := []ItemWithProduct{}
	for _, it := range rows {
		p, err := s.catalog.Product(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				log.Printf("[store] cart item %s references missing product %s, skipping", it.ID, it.ProductID)
				continue
			}
			return nil, err
		}
		out = append(out, ItemWithProduct{Item: it, Product: *p})
	}
	return out, nil
}

func (s *MemStore) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*Item, error) {
	if quantity < 1 {
		quantity = 1
	}
	if _, err := s.catalog.Product(ctx, productID); err != nil {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.order {
		it, ok := s.items[id]
		if ok && it.SessionID == sessionID && it.ProductID == productID {
			it.Quantity += quantity
			cp := *it
			return &cp, nil
		}
	}
	it := &Item{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	s.items[it.ID] = it
	s.order = append(s.order, it.ID)
	cp := *it
	return &cp, nil
}

func (s *MemStore) UpdateQuantity(_ context.Context, itemID string, quantity int) (*Item, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[itemID]
	if !ok {
		return nil, ErrNotFound
	}
	it.Quantity = quantity
	cp := *it
	return &cp, nil
}

func (s *MemStore) RemoveItem(_ context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteLocked(itemID)
	return nil
}

func (s *MemStore) ClearCart(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var drop []string
	for id, it := range s.items {
		if it.SessionID == sessionID {
			drop = append(drop, id)
		}
	}
	for _, id := range drop {
		s.deleteLocked(id)
	}
	return nil
}

func (s *MemStore) deleteLocked(itemID string) {
	if _, ok := s.items[itemID]; !ok {
		return
	}
	delete(s.items, itemID)
	for i, id := range s.order {
		if id == itemID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
