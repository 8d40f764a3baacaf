package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/toteworks/storefront/internal/cart"
	"github.com/toteworks/storefront/internal/httpx"
	"github.com/toteworks/storefront/internal/order"
	"github.com/toteworks/storefront/internal/payments"
)

// createPaymentIntentHandler charges the current cart total, not a
// client-supplied amount, so the UI cannot understate the price.
func createPaymentIntentHandler(carts cart.Store, processor payments.Processor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePaymentIntentRequest
		_ = c.ShouldBindJSON(&req) // body is optional, currency defaults
		currency := req.Currency
		if currency == "" {
			currency = "usd"
		}

		sessionID := httpx.SessionID(c)
		items, err := carts.Items(c.Request.Context(), sessionID)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		summary, err := cart.Summarize(items)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		amount, err := decimal.NewFromString(summary.TotalPrice)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		if amount.IsZero() {
			httpx.Error(c, order.ErrEmptyCart)
			return
		}

		intent, err := processor.CreateIntent(c.Request.Context(), amount, currency, sessionID)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
	}
}

func customerInfo(c *gin.Context, email, name, address string) order.CustomerInfo {
	info := order.CustomerInfo{Email: email, Name: name, ShippingAddress: address}
	if u, ok := httpx.CurrentUser(c); ok {
		info.UserID = u.ID
		if info.Email == "" {
			info.Email = u.Email
		}
	}
	return info
}

func confirmOrderHandler(checkout *order.Checkout) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConfirmOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session ID and payment intent ID required"})
			return
		}
		o, err := checkout.ConfirmPayment(c.Request.Context(), httpx.SessionID(c), req.PaymentIntentID,
			customerInfo(c, req.CustomerEmail, req.CustomerName, req.ShippingAddress))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"orderId": o.ID, "message": "order confirmed successfully"})
	}
}

func demoCheckoutHandler(checkout *order.Checkout) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DemoCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid customer email required"})
			return
		}
		o, err := checkout.Demo(c.Request.Context(), httpx.SessionID(c),
			customerInfo(c, req.CustomerEmail, req.CustomerName, req.ShippingAddress))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}
