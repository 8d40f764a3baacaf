package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct{ db *pgxpool.Pool }

func NewPGStore(db *pgxpool.Pool) *PGStore { return &PGStore{db: db} }

const orderCols = `id, COALESCE(session_id,''), COALESCE(user_id,''), payment_intent_id, status, total_amount::text,
	COALESCE(customer_email,''), COALESCE(customer_name,''), COALESCE(shipping_address,''), COALESCE(tracking_number,''),
	created_at, updated_at`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.SessionID, &o.UserID, &o.PaymentIntentID, &o.Status, &o.TotalAmount,
		&o.CustomerEmail, &o.CustomerName, &o.ShippingAddress, &o.TrackingNumber, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *PGStore) Create(ctx context.Context, o *Order, items []Item) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}
	if !o.Status.Valid() {
		return ErrInvalidStatus
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if err := tx.QueryRow(ctx, `
		INSERT INTO orders (id, session_id, user_id, payment_intent_id, status, total_amount,
			customer_email, customer_name, shipping_address, tracking_number, created_at, updated_at)
		VALUES ($1,NULLIF($2,''),NULLIF($3,''),$4,$5,$6,NULLIF($7,''),NULLIF($8,''),NULLIF($9,''),NULLIF($10,''),NOW(),NOW())
		RETURNING created_at, updated_at
	`, o.ID, o.SessionID, o.UserID, o.PaymentIntentID, o.Status, o.TotalAmount,
		o.CustomerEmail, o.CustomerName, o.ShippingAddress, o.TrackingNumber).
		Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		items[i].OrderID = o.ID
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, price)
			VALUES ($1,$2,$3,$4,$5)
		`, items[i].ID, o.ID, items[i].ProductID, items[i].Quantity, items[i].Price); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *PGStore) Get(ctx context.Context, id string) (*Order, []Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(s.db.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, order_id, product_id, quantity, price::text
		FROM order_items WHERE order_id=$1
	`, id)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()
	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, nil, err
		}
		items = append(items, it)
	}
	return o, items, rows.Err()
}

func (s *PGStore) ByPaymentIntent(ctx context.Context, intentID string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(s.db.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE payment_intent_id=$1`, intentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *PGStore) list(ctx context.Context, where string, args ...any) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.db.Query(ctx, `SELECT `+orderCols+` FROM orders`+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (s *PGStore) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	return s.list(ctx, ` WHERE user_id=$1`, userID)
}

func (s *PGStore) ListAll(ctx context.Context) ([]Order, error) {
	return s.list(ctx, ``)
}

func (s *PGStore) UpdateStatus(ctx context.Context, id string, next Status, tracking string) (*Order, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Read current status first so the transition table is the gate; the
	// update re-checks the status to stay race-free.
	var current Status
	if err := s.db.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1`, id).Scan(&current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !current.CanTransition(next) {
		return nil, ErrInvalidTransition
	}

	o, err := scanOrder(s.db.QueryRow(ctx, `
		UPDATE orders
		SET status=$2, tracking_number=COALESCE(NULLIF($3,''), tracking_number), updated_at=NOW()
		WHERE id=$1 AND status=$4
		RETURNING `+orderCols+`
	`, id, next, tracking, current))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}
	return o, nil
}
