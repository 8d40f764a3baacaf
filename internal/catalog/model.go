package catalog

import "time"

// Availability of a product in the storefront.
const (
	Available  = "available"
	ComingSoon = "coming-soon"
)

type Artist struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	Location     string `json:"location"`
	Style        string `json:"style"`
	Website      string `json:"website,omitempty"`
	Featured     bool   `json:"featured"`
	FeaturedWeek int    `json:"featuredWeek,omitempty"`
	Image        string `json:"image"`
}

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Prices are decimal strings to avoid float rounding (NUMERIC in Postgres).
	Price        string    `json:"price"`
	SalePrice    string    `json:"salePrice,omitempty"`
	Image        string    `json:"image"`
	Images       []string  `json:"images,omitempty"`
	ArtistID     string    `json:"artistId"`
	Category     string    `json:"category"`
	InStock      bool      `json:"inStock"`
	Featured     bool      `json:"featured"`
	Availability string    `json:"availability"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EffectivePrice is the price used for every monetary calculation:
// the sale price when present, the list price otherwise.
func (p Product) EffectivePrice() string {
	if p.SalePrice != "" {
		return p.SalePrice
	}
	return p.Price
}

type ProductWithArtist struct {
	Product
	Artist Artist `json:"artist"`
}
