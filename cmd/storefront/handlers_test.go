package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/toteworks/storefront/internal/cart"
	"github.com/toteworks/storefront/internal/catalog"
	"github.com/toteworks/storefront/internal/newsletter"
	"github.com/toteworks/storefront/internal/order"
	"github.com/toteworks/storefront/internal/payments"
	"github.com/toteworks/storefront/internal/user"
)

//
// ---------- TEST WIRING ----------
//

// testEnv assembles the real router over in-memory stores, seeded with the
// launch catalog.
type testEnv struct {
	router      *gin.Engine
	catalog     *catalog.MemStore
	carts       *cart.MemStore
	orders      *order.MemStore
	users       *user.MemStore
	sessions    *user.Sessions
	fulfillment *order.Fulfillment
	sched       *manualScheduler
}

// manualScheduler drives fulfillment timers from test code.
type manualScheduler struct {
	now     time.Duration
	pending []struct {
		at time.Duration
		fn func()
	}
}

func (m *manualScheduler) Schedule(d time.Duration, fn func()) {
	m.pending = append(m.pending, struct {
		at time.Duration
		fn func()
	}{m.now + d, fn})
}

func (m *manualScheduler) Advance(d time.Duration) {
	m.now += d
	for {
		fired := false
		for i, s := range m.pending {
			if s.at <= m.now {
				m.pending = append(m.pending[:i], m.pending[i+1:]...)
				s.fn()
				fired = true
				break
			}
		}
		if !fired {
			return
		}
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.NewMemStore()
	if err := catalog.Seed(context.Background(), cat); err != nil {
		t.Fatalf("seed: %v", err)
	}
	carts := cart.NewMemStore(cat)
	orders := order.NewMemStore()
	users := user.NewMemStore("operator@example.com")
	sessions := user.NewSessions()
	sched := &manualScheduler{}
	fulfillment := order.NewFulfillment(orders, sched, 30*time.Second, 2*time.Minute)

	env := &testEnv{
		catalog:     cat,
		carts:       carts,
		orders:      orders,
		users:       users,
		sessions:    sessions,
		fulfillment: fulfillment,
		sched:       sched,
	}
	env.router = buildRouter(deps{
		catalog:     cat,
		carts:       carts,
		orders:      orders,
		checkout:    order.NewCheckout(carts, orders, fulfillment),
		users:       users,
		userSvc:     user.NewService(users),
		sessions:    sessions,
		subscribers: newsletter.NewMemStore(),
		processor:   payments.NewStripe(""), // degraded unless a test swaps it
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func sessionHeader(sid string) map[string]string {
	return map[string]string{"X-Session-ID": sid}
}

// cartResponse mirrors the GET /api/cart payload.
type cartResponse struct {
	Items      []cart.ItemWithProduct `json:"items"`
	ItemCount  int                    `json:"itemCount"`
	TotalPrice string                 `json:"totalPrice"`
}

//
// ---------- CATALOG ----------
//

func TestListArtists(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/artists", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	artists := decode[[]catalog.Artist](t, w)
	if len(artists) != 7 {
		t.Fatalf("artists=%d, expected 7", len(artists))
	}
}

func TestGetArtistNotFound(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/artists/nope", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, expected 404", w.Code)
	}
}

func TestFeaturedArtist(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/artists/featured/current", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	a := decode[catalog.Artist](t, w)
	if a.Name != "Amy Ma" {
		t.Fatalf("featured artist=%q, expected Amy Ma", a.Name)
	}
}

func TestListProductsWithSearch(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/products?search=garden", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	products := decode[[]catalog.ProductWithArtist](t, w)
	if len(products) != 1 || products[0].Name != "Garden Party Tote" {
		t.Fatalf("unexpected search result: %+v", products)
	}

	w = env.do(t, http.MethodGet, "/api/products?artist=artist-amy-ma", nil, nil)
	products = decode[[]catalog.ProductWithArtist](t, w)
	if len(products) != 1 || products[0].ArtistID != "artist-amy-ma" {
		t.Fatalf("unexpected artist filter result: %+v", products)
	}
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/products/tote-daydream", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	p := decode[catalog.ProductWithArtist](t, w)
	if p.Artist.Name != "Alexis Zhang" {
		t.Fatalf("artist=%q, expected Alexis Zhang", p.Artist.Name)
	}
}

//
// ---------- CART ----------
//

func TestCartRequiresSessionHeader(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/cart", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, expected 400 without X-Session-ID", w.Code)
	}
}

func TestAddToCartMergesDuplicates(t *testing.T) {
	env := newTestEnv(t)
	h := sessionHeader("s1")

	w := env.do(t, http.MethodPost, "/api/cart", AddCartItemRequest{ProductID: "tote-daydream", Quantity: 1}, h)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	w = env.do(t, http.MethodPost, "/api/cart", AddCartItemRequest{ProductID: "tote-daydream", Quantity: 2}, h)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/api/cart", nil, h)
	resp := decode[cartResponse](t, w)
	if len(resp.Items) != 1 || resp.Items[0].Quantity != 3 {
		t.Fatalf("expected one merged row qty=3, got %+v", resp.Items)
	}
	if resp.ItemCount != 3 || resp.TotalPrice != "44.97" {
		t.Fatalf("count=%d total=%s, expected 3 / 44.97", resp.ItemCount, resp.TotalPrice)
	}
}

func TestAddUnknownProductToCart(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/cart", AddCartItemRequest{ProductID: "missing"}, sessionHeader("s1"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, expected 404", w.Code)
	}
}

func TestUpdateCartQuantityValidation(t *testing.T) {
	env := newTestEnv(t)
	h := sessionHeader("s1")

	w := env.do(t, http.MethodPost, "/api/cart", AddCartItemRequest{ProductID: "tote-daydream"}, h)
	item := decode[cart.Item](t, w)

	zero := 0
	w = env.do(t, http.MethodPatch, "/api/cart/"+item.ID, UpdateCartItemRequest{Quantity: &zero}, h)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, expected 400 for quantity 0", w.Code)
	}

	five := 5
	w = env.do(t, http.MethodPatch, "/api/cart/"+item.ID, UpdateCartItemRequest{Quantity: &five}, h)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if got := decode[cart.Item](t, w); got.Quantity != 5 {
		t.Fatalf("quantity=%d, expected 5", got.Quantity)
	}
}

func TestRemoveCartItem(t *testing.T) {
	env := newTestEnv(t)
	h := sessionHeader("s1")

	w := env.do(t, http.MethodPost, "/api/cart", AddCartItemRequest{ProductID: "tote-daydream"}, h)
	item := decode[cart.Item](t, w)

	w = env.do(t, http.MethodDelete, "/api/cart/"+item.ID, nil, h)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	// deleting again stays 200: removal is idempotent by id
	w = env.do(t, http.MethodDelete, "/api/cart/"+item.ID, nil, h)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, expected idempotent delete", w.Code)
	}
}

//
// ---------- NEWSLETTER ----------
//

func TestNewsletterSubscribe(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/newsletter/subscribe", SubscribeRequest{Email: "ada@example.com"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	w = env.do(t, http.MethodPost, "/api/newsletter/subscribe", SubscribeRequest{Email: "not-an-email"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, expected 400 for bad email", w.Code)
	}
}
