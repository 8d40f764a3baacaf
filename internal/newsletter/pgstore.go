package newsletter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct{ db *pgxpool.Pool }

func NewPGStore(db *pgxpool.Pool) *PGStore { return &PGStore{db: db} }

func (s *PGStore) Subscribe(ctx context.Context, email string) (*Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sub Subscriber
	err := s.db.QueryRow(ctx, `
		INSERT INTO newsletter_subscribers (id, email, subscribed, created_at)
		VALUES ($1, LOWER($2), TRUE, NOW())
		ON CONFLICT (email) DO UPDATE SET subscribed = TRUE
		RETURNING id, email, subscribed, created_at
	`, uuid.NewString(), email).Scan(&sub.ID, &sub.Email, &sub.Subscribed, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *PGStore) Subscribers(ctx context.Context) ([]Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.db.Query(ctx, `
		SELECT id, email, subscribed, created_at
		FROM newsletter_subscribers WHERE subscribed ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Subscriber{}
	for rows.Next() {
		var sub Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.Subscribed, &sub.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}
