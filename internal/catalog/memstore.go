package catalog

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore keeps the catalog in process memory. Insertion order is preserved
// so listings are stable across reads.
type MemStore struct {
	mu        sync.RWMutex
	artists   map[string]*Artist
	products  map[string]*Product
	artistIDs []string
	prodIDs   []string
}

func NewMemStore() *MemStore {
	return &MemStore{
		artists:  make(map[string]*Artist),
		products: make(map[string]*Product),
	}
}

func (s *MemStore) AddArtist(_ context.Context, a *Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if _, exists := s.artists[a.ID]; !exists {
		s.artistIDs = append(s.artistIDs, a.ID)
	}
	cp := *a
	s.artists[cp.ID] = &cp
	return nil
}

func (s *MemStore) AddProduct(_ context.Context, p *Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Category == "" {
		p.Category = "tote-bag"
	}
	if p.Availability == "" {
		p.Availability = Available
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if _, exists := s.products[p.ID]; !exists {
		s.prodIDs = append(s.prodIDs, p.ID)
	}
	cp := *p
	s.products[cp.ID] = &cp
	return nil
}

func (s *MemStore) SetFeaturedArtist(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.artists[id]
	if !ok {
		return ErrNotFound
	}
	for _, a := range s.artists {
		a.Featured = false
	}
	target.Featured = true
	return nil
}

func (s *MemStore) Artists(_ context.Context) ([]Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Artist, 0, len(s.artistIDs))
	for _, id := range s.artistIDs {
		out = append(out, *s.artists[id])
	}
	return out, nil
}

func (s *MemStore) Artist(_ context.Context, id string) (*Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.artists[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *MemStore) FeaturedArtist(_ context.Context) (*Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Insertion order keeps the answer deterministic even if the data
	// arrives with more than one flagged artist.
	for _, id := range s.artistIDs {
		if a := s.artists[id]; a.Featured {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) Products(_ context.Context, q Query) ([]ProductWithArtist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	search := strings.ToLower(strings.TrimSpace(q.Search))
	var out []ProductWithArtist
	for _, id := range s.prodIDs {
		p := s.products[id]
		if search != "" {
			if !strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.Description), search) {
				continue
			}
		} else if q.ArtistID != "" && p.ArtistID != q.ArtistID {
			continue
		}
		pa, ok := s.withArtistLocked(p)
		if !ok {
			continue
		}
		out = append(out, pa)
	}
	if out == nil {
		out = []ProductWithArtist{}
	}
	return out, nil
}

func (s *MemStore) FeaturedProducts(_ context.Context) ([]ProductWithArtist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []ProductWithArtist{}
	for _, id := range s.prodIDs {
		p := s.products[id]
		if !p.Featured {
			continue
		}
		pa, ok := s.withArtistLocked(p)
		if !ok {
			continue
		}
		out = append(out, pa)
	}
	return out, nil
}

func (s *MemStore) Product(_ context.Context, id string) (*ProductWithArtist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	pa, ok := s.withArtistLocked(p)
	if !ok {
		return nil, ErrNotFound
	}
	return &pa, nil
}

// withArtistLocked joins a product with its artist. A dangling artist
// reference is a soft integrity violation: the row is skipped, not fatal.
func (s *MemStore) withArtistLocked(p *Product) (ProductWithArtist, bool) {
	a, ok := s.artists[p.ArtistID]
	if !ok {
		log.Printf("[store] product %s (%s) references missing artist %s, skipping", p.ID, p.Name, p.ArtistID)
		return ProductWithArtist{}, false
	}
	return ProductWithArtist{Product: *p, Artist: *a}, true
}
