package cart

import (
	"time"

	"github.com/toteworks/storefront/internal/catalog"
)

type Item struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

type ItemWithProduct struct {
	Item
	Product catalog.ProductWithArtist `json:"product"`
}

// Summary is derived on read, never stored.
// swagger:model CartSummary
type Summary struct {
	ItemCount  int    `json:"itemCount"`
	TotalPrice string `json:"totalPrice"`
}
