package catalog

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore is the Postgres-backed catalog.
type PGStore struct{ db *pgxpool.Pool }

func NewPGStore(db *pgxpool.Pool) *PGStore { return &PGStore{db: db} }

const artistCols = `id, name, bio, location, style, COALESCE(website,''), featured, COALESCE(featured_week,0), image`

func scanArtist(row pgx.Row) (*Artist, error) {
	var a Artist
	err := row.Scan(&a.ID, &a.Name, &a.Bio, &a.Location, &a.Style, &a.Website, &a.Featured, &a.FeaturedWeek, &a.Image)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *PGStore) AddArtist(ctx context.Context, a *Artist) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, `
		INSERT INTO artists (id, name, bio, location, style, website, featured, featured_week, image)
		VALUES ($1,$2,$3,$4,$5,NULLIF($6,''),$7,NULLIF($8,0),$9)
		ON CONFLICT (id) DO NOTHING
	`, a.ID, a.Name, a.Bio, a.Location, a.Style, a.Website, a.Featured, a.FeaturedWeek, a.Image)
	return err
}

func (s *PGStore) AddProduct(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if p.Category == "" {
		p.Category = "tote-bag"
	}
	if p.Availability == "" {
		p.Availability = Available
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO products (id, name, description, price, sale_price, image, images, artist_id, category, in_stock, featured, availability, created_at)
		VALUES ($1,$2,$3,$4,NULLIF($5,'')::numeric,$6,$7,$8,$9,$10,$11,$12,NOW())
		ON CONFLICT (id) DO NOTHING
	`, p.ID, p.Name, p.Description, p.Price, p.SalePrice, p.Image, p.Images, p.ArtistID, p.Category, p.InStock, p.Featured, p.Availability)
	return err
}

func (s *PGStore) SetFeaturedArtist(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := s.db.Exec(ctx, `UPDATE artists SET featured = (id = $1) WHERE featured OR id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) Artists(ctx context.Context) ([]Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.db.Query(ctx, `SELECT `+artistCols+` FROM artists ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *PGStore) Artist(ctx context.Context, id string) (*Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	a, err := scanArtist(s.db.QueryRow(ctx, `SELECT `+artistCols+` FROM artists WHERE id=$1`, id))
	if err != nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *PGStore) FeaturedArtist(ctx context.Context) (*Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	a, err := scanArtist(s.db.QueryRow(ctx, `SELECT `+artistCols+` FROM artists WHERE featured ORDER BY id LIMIT 1`))
	if err != nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// productJoin selects products inner-joined to their artist; a dangling
// artist_id falls out of the join, matching the soft-violation rule.
const productJoin = `
	SELECT p.id, p.name, p.description, p.price::text, COALESCE(p.sale_price::text,''),
	       p.image, p.images, p.artist_id, p.category, p.in_stock, p.featured, p.availability, p.created_at,
	       a.id, a.name, a.bio, a.location, a.style, COALESCE(a.website,''), a.featured, COALESCE(a.featured_week,0), a.image
	FROM products p
	JOIN artists a ON a.id = p.artist_id`

func scanProductWithArtist(rows pgx.Rows) (ProductWithArtist, error) {
	var pa ProductWithArtist
	err := rows.Scan(
		&pa.ID, &pa.Name, &pa.Description, &pa.Price, &pa.SalePrice,
		&pa.Image, &pa.Images, &pa.ArtistID, &pa.Category, &pa.InStock, &pa.Featured, &pa.Availability, &pa.CreatedAt,
		&pa.Artist.ID, &pa.Artist.Name, &pa.Artist.Bio, &pa.Artist.Location, &pa.Artist.Style,
		&pa.Artist.Website, &pa.Artist.Featured, &pa.Artist.FeaturedWeek, &pa.Artist.Image,
	)
	return pa, err
}

func (s *PGStore) queryProducts(ctx context.Context, where string, args ...any) ([]ProductWithArtist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.db.Query(ctx, productJoin+where+` ORDER BY p.created_at, p.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ProductWithArtist{}
	for rows.Next() {
		pa, err := scanProductWithArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pa)
	}
	return out, rows.Err()
}

func (s *PGStore) Products(ctx context.Context, q Query) ([]ProductWithArtist, error) {
	if search := strings.TrimSpace(q.Search); search != "" {
		return s.queryProducts(ctx, ` WHERE p.name ILIKE '%'||$1||'%' OR p.description ILIKE '%'||$1||'%'`, search)
	}
	if q.ArtistID != "" {
		return s.queryProducts(ctx, ` WHERE p.artist_id = $1`, q.ArtistID)
	}
	return s.queryProducts(ctx, ``)
}

func (s *PGStore) FeaturedProducts(ctx context.Context) ([]ProductWithArtist, error) {
	return s.queryProducts(ctx, ` WHERE p.featured`)
}

func (s *PGStore) Product(ctx context.Context, id string) (*ProductWithArtist, error) {
	list, err := s.queryProducts(ctx, ` WHERE p.id = $1`, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(list) == 0 {
		log.Printf("[store] product %s missing or references a missing artist", id)
		return nil, ErrNotFound
	}
	return &list[0], nil
}
