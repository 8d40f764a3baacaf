package main

import "github.com/toteworks/storefront/internal/user"

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

// AddCartItemRequest payload for adding a product to the cart.
// swagger:model AddCartItemRequest
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required" example:"tote-garden-party"`
	Quantity  int    `json:"quantity" example:"1"`
}

// UpdateCartItemRequest payload for setting a line's quantity.
// swagger:model UpdateCartItemRequest
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"2"`
}

// CreatePaymentIntentRequest payload for starting a card payment.
// swagger:model CreatePaymentIntentRequest
type CreatePaymentIntentRequest struct {
	Currency string `json:"currency" example:"usd"`
}

// ConfirmOrderRequest payload for finalizing a paid order.
// swagger:model ConfirmOrderRequest
type ConfirmOrderRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	CustomerEmail   string `json:"customerEmail" binding:"omitempty,email"`
	CustomerName    string `json:"customerName"`
	ShippingAddress string `json:"shippingAddress"`
}

// DemoCheckoutRequest payload for the bypassed-payment checkout.
// swagger:model DemoCheckoutRequest
type DemoCheckoutRequest struct {
	CustomerEmail   string `json:"customerEmail" binding:"required,email"`
	CustomerName    string `json:"customerName"`
	ShippingAddress string `json:"shippingAddress"`
}

// RegisterRequest payload for local account creation.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest payload for local login.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest payload for patching the caller's profile. Role and
// identity fields are not accepted here.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Email           string       `json:"email" binding:"omitempty,email"`
	FirstName       string       `json:"firstName"`
	LastName        string       `json:"lastName"`
	Phone           string       `json:"phone"`
	ProfileImageURL string       `json:"profileImageUrl"`
	ShippingAddress user.Address `json:"shippingAddress"`
}

// UpdateOrderRequest payload for the admin order update.
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"trackingNumber"`
}

// UpdateRoleRequest payload for the admin role update.
// swagger:model UpdateRoleRequest
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SubscribeRequest payload for the newsletter.
// swagger:model SubscribeRequest
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
