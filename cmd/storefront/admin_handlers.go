package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toteworks/storefront/internal/httpx"
	"github.com/toteworks/storefront/internal/order"
	"github.com/toteworks/storefront/internal/user"
)

func adminListOrdersHandler(orders order.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListAll(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func adminListUsersHandler(users user.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func adminUpdateOrderHandler(orders order.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
			return
		}
		o, err := orders.UpdateStatus(c.Request.Context(), c.Param("id"), order.Status(req.Status), req.TrackingNumber)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func adminUpdateRoleHandler(users user.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateRoleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role required"})
			return
		}
		u, err := users.SetRole(c.Request.Context(), c.Param("id"), user.Role(req.Role))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
