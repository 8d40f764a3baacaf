package httpx

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toteworks/storefront/internal/cart"
	"github.com/toteworks/storefront/internal/catalog"
	"github.com/toteworks/storefront/internal/order"
	"github.com/toteworks/storefront/internal/payments"
	"github.com/toteworks/storefront/internal/user"
)

// ErrForbidden marks cross-user access attempts caught at the handler layer.
var ErrForbidden = errors.New("forbidden")

// Error translates store errors into an HTTP status plus JSON body. Nothing
// escapes as a crash.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, cart.ErrNotFound),
		errors.Is(err, order.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, user.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrIntentUsed),
		errors.Is(err, user.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, payments.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		rid, _ := c.Get(ctxRequestID)
		log.Printf("[http] rid=%v internal error: %v", rid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
