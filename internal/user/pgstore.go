package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	db            *pgxpool.Pool
	operatorEmail string
}

func NewPGStore(db *pgxpool.Pool, operatorEmail string) *PGStore {
	return &PGStore{db: db, operatorEmail: strings.ToLower(operatorEmail)}
}

const userCols = `id, email, COALESCE(first_name,''), COALESCE(last_name,''), COALESCE(phone,''), role,
	COALESCE(profile_image_url,''), COALESCE(ship_line1,''), COALESCE(ship_line2,''), COALESCE(ship_city,''),
	COALESCE(ship_state,''), COALESCE(ship_postal_code,''), COALESCE(ship_country,''), COALESCE(password_hash,''),
	created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone, &u.Role,
		&u.ProfileImageURL, &u.ShippingAddress.Line1, &u.ShippingAddress.Line2, &u.ShippingAddress.City,
		&u.ShippingAddress.State, &u.ShippingAddress.PostalCode, &u.ShippingAddress.Country, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PGStore) Upsert(ctx context.Context, id string, attrs Attrs) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	existing, err := scanUser(tx.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id=$1 FOR UPDATE`, id))
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if existing == nil {
		role := RoleCustomer
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
			return nil, err
		}
		if count == 0 || (s.operatorEmail != "" && strings.EqualFold(attrs.Email, s.operatorEmail)) {
			role = RoleAdmin
		}
		u := &User{ID: id, Role: role}
		merge(u, attrs)
		out, err := scanUser(tx.QueryRow(ctx, `
			INSERT INTO users (id, email, first_name, last_name, phone, role, profile_image_url,
				ship_line1, ship_line2, ship_city, ship_state, ship_postal_code, ship_country,
				password_hash, created_at, updated_at)
			VALUES ($1,$2,NULLIF($3,''),NULLIF($4,''),NULLIF($5,''),$6,NULLIF($7,''),
				NULLIF($8,''),NULLIF($9,''),NULLIF($10,''),NULLIF($11,''),NULLIF($12,''),NULLIF($13,''),
				NULLIF($14,''),NOW(),NOW())
			RETURNING `+userCols,
			u.ID, u.Email, u.FirstName, u.LastName, u.Phone, u.Role, u.ProfileImageURL,
			u.ShippingAddress.Line1, u.ShippingAddress.Line2, u.ShippingAddress.City,
			u.ShippingAddress.State, u.ShippingAddress.PostalCode, u.ShippingAddress.Country,
			u.PasswordHash))
		if err != nil {
			return nil, err
		}
		return out, tx.Commit(ctx)
	}

	merge(existing, attrs)
	out, err := scanUser(tx.QueryRow(ctx, `
		UPDATE users SET email=$2, first_name=NULLIF($3,''), last_name=NULLIF($4,''), phone=NULLIF($5,''),
			profile_image_url=NULLIF($6,''), ship_line1=NULLIF($7,''), ship_line2=NULLIF($8,''),
			ship_city=NULLIF($9,''), ship_state=NULLIF($10,''), ship_postal_code=NULLIF($11,''),
			ship_country=NULLIF($12,''), password_hash=NULLIF($13,''), updated_at=NOW()
		WHERE id=$1
		RETURNING `+userCols,
		existing.ID, existing.Email, existing.FirstName, existing.LastName, existing.Phone,
		existing.ProfileImageURL, existing.ShippingAddress.Line1, existing.ShippingAddress.Line2,
		existing.ShippingAddress.City, existing.ShippingAddress.State, existing.ShippingAddress.PostalCode,
		existing.ShippingAddress.Country, existing.PasswordHash))
	if err != nil {
		return nil, err
	}
	return out, tx.Commit(ctx)
}

func (s *PGStore) Get(ctx context.Context, id string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	u, err := scanUser(s.db.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id=$1`, id))
	if err != nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *PGStore) ByEmail(ctx context.Context, email string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	u, err := scanUser(s.db.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER($1)`, email))
	if err != nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *PGStore) PatchProfile(ctx context.Context, id string, updates Attrs) (*User, error) {
	updates.PasswordHash = ""
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	u, err := scanUser(s.db.QueryRow(ctx, `
		UPDATE users SET
			email = COALESCE(NULLIF($2,''), email),
			first_name = COALESCE(NULLIF($3,''), first_name),
			last_name = COALESCE(NULLIF($4,''), last_name),
			phone = COALESCE(NULLIF($5,''), phone),
			profile_image_url = COALESCE(NULLIF($6,''), profile_image_url),
			ship_line1 = COALESCE(NULLIF($7,''), ship_line1),
			ship_line2 = COALESCE(NULLIF($8,''), ship_line2),
			ship_city = COALESCE(NULLIF($9,''), ship_city),
			ship_state = COALESCE(NULLIF($10,''), ship_state),
			ship_postal_code = COALESCE(NULLIF($11,''), ship_postal_code),
			ship_country = COALESCE(NULLIF($12,''), ship_country),
			updated_at = NOW()
		WHERE id=$1
		RETURNING `+userCols,
		id, updates.Email, updates.FirstName, updates.LastName, updates.Phone, updates.ProfileImageURL,
		updates.ShippingAddress.Line1, updates.ShippingAddress.Line2, updates.ShippingAddress.City,
		updates.ShippingAddress.State, updates.ShippingAddress.PostalCode, updates.ShippingAddress.Country))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *PGStore) SetRole(ctx context.Context, id string, role Role) (*User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	u, err := scanUser(s.db.QueryRow(ctx, `
		UPDATE users SET role=$2, updated_at=NOW() WHERE id=$1 RETURNING `+userCols, id, role))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *PGStore) List(ctx context.Context) ([]User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.db.Query(ctx, `SELECT `+userCols+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}
