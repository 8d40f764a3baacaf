package order

import (
	"time"

	"github.com/toteworks/storefront/internal/catalog"
)

// Status is the order lifecycle state. Transitions go through the table
// below; terminal states have no exits.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusProcessing, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusShipped, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) Terminal() bool {
	t, ok := transitions[s]
	return ok && len(t) == 0
}

// CanTransition reports whether s may move to next.
func (s Status) CanTransition(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId,omitempty"`
	UserID    string `json:"userId,omitempty"`
	// PaymentIntentID is the external processor's intent id, or a synthetic
	// demo_order_<millis> token on the bypassed-payment path.
	PaymentIntentID string `json:"paymentIntentId"`
	Status          Status `json:"status"`
	// TotalAmount is computed once at creation from the cart snapshot and
	// never recomputed.
	TotalAmount     string    `json:"totalAmount"`
	CustomerEmail   string    `json:"customerEmail,omitempty"`
	CustomerName    string    `json:"customerName,omitempty"`
	ShippingAddress string    `json:"shippingAddress,omitempty"`
	TrackingNumber  string    `json:"trackingNumber,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Item is an order line. Price is the product's effective price copied at
// purchase time; later catalog changes never alter it.
type Item struct {
	ID        string `json:"id"`
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

type ItemWithProduct struct {
	Item
	Product *catalog.ProductWithArtist `json:"product,omitempty"`
}

type OrderWithItems struct {
	Order
	Items []ItemWithProduct `json:"items"`
}
