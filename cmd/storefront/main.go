package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/toteworks/storefront/internal/cart"
	"github.com/toteworks/storefront/internal/catalog"
	"github.com/toteworks/storefront/internal/config"
	"github.com/toteworks/storefront/internal/database"
	"github.com/toteworks/storefront/internal/newsletter"
	"github.com/toteworks/storefront/internal/order"
	"github.com/toteworks/storefront/internal/payments"
	"github.com/toteworks/storefront/internal/user"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)
	ctx := context.Background()

	var (
		catalogStore catalog.Store
		cartStore    cart.Store
		orderStore   order.Store
		userStore    user.Store
		subscribers  newsletter.Store
	)

	if cfg.PostgresDSN != "" {
		pool, err := database.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()
		if err := database.Migrate(ctx, pool); err != nil {
			log.Fatalf("database: %v", err)
		}
		catalogStore = catalog.NewPGStore(pool)
		cartStore = cart.NewPGStore(pool, catalogStore)
		orderStore = order.NewPGStore(pool)
		userStore = user.NewPGStore(pool, cfg.AdminEmail)
		subscribers = newsletter.NewPGStore(pool)
	} else {
		log.Printf("[store] no POSTGRES_DSN, using in-memory stores")
		catalogStore = catalog.NewMemStore()
		cartStore = cart.NewMemStore(catalogStore)
		orderStore = order.NewMemStore()
		userStore = user.NewMemStore(cfg.AdminEmail)
		subscribers = newsletter.NewMemStore()
	}

	if err := catalog.Seed(ctx, catalogStore); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	fulfillment := order.NewFulfillment(orderStore, order.NewTimerScheduler(), cfg.ProcessingDelay, cfg.ShippingDelay)
	checkout := order.NewCheckout(cartStore, orderStore, fulfillment)

	r := buildRouter(deps{
		catalog:     catalogStore,
		carts:       cartStore,
		orders:      orderStore,
		checkout:    checkout,
		users:       userStore,
		userSvc:     user.NewService(userStore),
		sessions:    user.NewSessions(),
		subscribers: subscribers,
		processor:   payments.NewStripe(cfg.StripeSecretKey),
	})

	log.Printf("storefront listening on %s", cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}
