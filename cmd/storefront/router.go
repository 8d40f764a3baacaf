package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/toteworks/storefront/internal/cart"
	"github.com/toteworks/storefront/internal/catalog"
	"github.com/toteworks/storefront/internal/httpx"
	"github.com/toteworks/storefront/internal/newsletter"
	"github.com/toteworks/storefront/internal/order"
	"github.com/toteworks/storefront/internal/payments"
	"github.com/toteworks/storefront/internal/user"
)

type deps struct {
	catalog     catalog.Store
	carts       cart.Store
	orders      order.Store
	checkout    *order.Checkout
	users       user.Store
	userSvc     *user.Service
	sessions    *user.Sessions
	subscribers newsletter.Store
	processor   payments.Processor
}

func buildRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())
	r.Use(httpx.Authenticate(d.sessions, d.users))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	api.GET("/artists", listArtistsHandler(d.catalog))
	api.GET("/artists/featured/current", featuredArtistHandler(d.catalog))
	api.GET("/artists/:id", getArtistHandler(d.catalog))

	api.GET("/products", listProductsHandler(d.catalog))
	api.GET("/products/featured", featuredProductsHandler(d.catalog))
	api.GET("/products/:id", getProductHandler(d.catalog))

	cartGroup := api.Group("", httpx.RequireSession())
	cartGroup.GET("/cart", getCartHandler(d.carts))
	cartGroup.POST("/cart", addCartItemHandler(d.carts))
	cartGroup.PATCH("/cart/:id", updateCartItemHandler(d.carts))
	cartGroup.DELETE("/cart/:id", removeCartItemHandler(d.carts))

	cartGroup.POST("/create-payment-intent", createPaymentIntentHandler(d.carts, d.processor))
	cartGroup.POST("/orders/confirm", confirmOrderHandler(d.checkout))
	cartGroup.POST("/checkout/demo", demoCheckoutHandler(d.checkout))

	api.POST("/auth/register", registerHandler(d.userSvc, d.sessions))
	api.POST("/auth/login", loginHandler(d.userSvc, d.sessions))
	api.POST("/auth/logout", logoutHandler(d.sessions))

	authed := api.Group("", httpx.RequireAuth())
	authed.GET("/auth/user", currentUserHandler())
	authed.PATCH("/user/profile", updateProfileHandler(d.users))
	authed.GET("/user/orders", listUserOrdersHandler(d.orders, d.catalog))
	authed.GET("/user/orders/:orderId", getUserOrderHandler(d.orders, d.catalog))

	admin := api.Group("/admin", httpx.RequireAdmin())
	admin.GET("/orders", adminListOrdersHandler(d.orders))
	admin.GET("/users", adminListUsersHandler(d.users))
	admin.PUT("/orders/:id", adminUpdateOrderHandler(d.orders))
	admin.PUT("/users/:id/role", adminUpdateRoleHandler(d.users))

	api.POST("/newsletter/subscribe", subscribeHandler(d.subscribers))

	return r
}
