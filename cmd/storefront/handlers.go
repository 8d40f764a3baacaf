package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toteworks/storefront/internal/cart"
	"github.com/toteworks/storefront/internal/catalog"
	"github.com/toteworks/storefront/internal/httpx"
	"github.com/toteworks/storefront/internal/newsletter"
)

func listArtistsHandler(cat catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		artists, err := cat.Artists(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, artists)
	}
}

func getArtistHandler(cat catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := cat.Artist(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func featuredArtistHandler(cat catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := cat.FeaturedArtist(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func listProductsHandler(cat catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := catalog.Query{
			Search:   c.Query("search"),
			ArtistID: c.Query("artist"),
		}
		products, err := cat.Products(c.Request.Context(), q)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func featuredProductsHandler(cat catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := cat.FeaturedProducts(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(cat catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := cat.Product(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// getCartHandler returns the session's rows plus the derived summary.
func getCartHandler(carts cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := carts.Items(c.Request.Context(), httpx.SessionID(c))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		summary, err := cart.Summarize(items)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":      items,
			"itemCount":  summary.ItemCount,
			"totalPrice": summary.TotalPrice,
		})
	}
}

func addCartItemHandler(carts cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item data"})
			return
		}
		item, err := carts.AddItem(c.Request.Context(), httpx.SessionID(c), req.ProductID, req.Quantity)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func updateCartItemHandler(carts cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid quantity required"})
			return
		}
		item, err := carts.UpdateQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func removeCartItemHandler(carts cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "item removed from cart"})
	}
}

func subscribeHandler(subs newsletter.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid email required"})
			return
		}
		sub, err := subs.Subscribe(c.Request.Context(), req.Email)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "successfully subscribed to newsletter", "subscriber": sub})
	}
}
