package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toteworks/storefront/internal/catalog"
	"github.com/toteworks/storefront/internal/httpx"
	"github.com/toteworks/storefront/internal/order"
	"github.com/toteworks/storefront/internal/user"
)

func registerHandler(svc *user.Service, sessions *user.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password (8+ chars) required"})
			return
		}
		u, err := svc.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": u, "token": sessions.Issue(u.ID)})
	}
}

func loginHandler(svc *user.Service, sessions *user.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
			return
		}
		u, err := svc.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u, "token": sessions.Issue(u.ID)})
	}
}

func logoutHandler(sessions *user.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if len(h) > len(prefix) && h[:len(prefix)] == prefix {
			sessions.Revoke(h[len(prefix):])
		}
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

func currentUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := httpx.CurrentUser(c)
		c.JSON(http.StatusOK, u)
	}
}

func updateProfileHandler(users user.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := httpx.CurrentUser(c)
		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile data"})
			return
		}
		updated, err := users.PatchProfile(c.Request.Context(), u.ID, user.Attrs{
			Email:           req.Email,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Phone:           req.Phone,
			ProfileImageURL: req.ProfileImageURL,
			ShippingAddress: req.ShippingAddress,
		})
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func listUserOrdersHandler(orders order.Store, cat catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := httpx.CurrentUser(c)
		list, err := orders.ListByUser(c.Request.Context(), u.ID)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		out := []order.OrderWithItems{}
		for i := range list {
			_, items, err := orders.Get(c.Request.Context(), list[i].ID)
			if err != nil {
				httpx.Error(c, err)
				return
			}
			out = append(out, *order.Hydrate(c.Request.Context(), cat, &list[i], items))
		}
		c.JSON(http.StatusOK, out)
	}
}

// getUserOrderHandler enforces the ownership rule: an order is visible to
// its owner or to an administrator, nobody else.
func getUserOrderHandler(orders order.Store, cat catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := httpx.CurrentUser(c)
		o, items, err := orders.Get(c.Request.Context(), c.Param("orderId"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		if o.UserID != u.ID && !u.Role.CanAdminister() {
			httpx.Error(c, httpx.ErrForbidden)
			return
		}
		c.JSON(http.StatusOK, order.Hydrate(c.Request.Context(), cat, o, items))
	}
}
