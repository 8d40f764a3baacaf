package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/toteworks/storefront/internal/catalog"
)

// PGStore keeps cart rows in Postgres. The UNIQUE (session_id, product_id)
// constraint plus ON CONFLICT upsert gives the merge-on-duplicate rule
// without a read-modify-write race.
type PGStore struct {
	db      *pgxpool.Pool
	catalog catalog.Store
}

func NewPGStore(db *pgxpool.Pool, cat catalog.Store) *PGStore {
	return &PGStore{db: db, catalog: cat}
}

func (s *PGStore) Items(ctx context.Context, sessionID string) ([]ItemWithProduct, error) {
	qctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.db.Query(qctx, `
		SELECT id, session_id, product_id, quantity, created_at
		FROM cart_items WHERE session_id=$1
		ORDER BY created_at, id
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plain []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.SessionID, &it.ProductID, &it.Quantity, &it.CreatedAt); err != nil {
			return nil, err
		}
		plain = append(plain, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := []ItemWithProduct{}
	for _, it := range plain {
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

func (s *PGStore) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*Item, error) {
	if quantity < 1 {
		quantity = 1
	}
	if _, err := s.catalog.Product(ctx, productID); err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var it Item
	err := s.db.QueryRow(ctx, `
		INSERT INTO cart_items (id, session_id, product_id, quantity, created_at)
		VALUES ($1,$2,$3,$4,NOW())
		ON CONFLICT (session_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, session_id, product_id, quantity, created_at
	`, uuid.NewString(), sessionID, productID, quantity).
		Scan(&it.ID, &it.SessionID, &it.ProductID, &it.Quantity, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *PGStore) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*Item, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var it Item
	err := s.db.QueryRow(ctx, `
		UPDATE cart_items SET quantity=$2 WHERE id=$1
		RETURNING id, session_id, product_id, quantity, created_at
	`, itemID, quantity).
		Scan(&it.ID, &it.SessionID, &it.ProductID, &it.Quantity, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (s *PGStore) RemoveItem(ctx context.Context, itemID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, `DELETE FROM cart_items WHERE id=$1`, itemID)
	return err
}

func (s *PGStore) ClearCart(ctx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, `DELETE FROM cart_items WHERE session_id=$1`, sessionID)
	return err
}
