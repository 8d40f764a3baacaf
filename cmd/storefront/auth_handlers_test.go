package main

import (
	"net/http"
	"testing"

	"github.com/toteworks/storefront/internal/order"
	"github.com/toteworks/storefront/internal/user"
)

type authResponse struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// register creates an account through the API and returns its session token.
func register(t *testing.T, env *testEnv, email string) authResponse {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/auth/register", RegisterRequest{
		Email:    email,
		Password: "hunter2hunter2",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status=%d body=%s", email, w.Code, w.Body.String())
	}
	return decode[authResponse](t, w)
}

func TestRegisterLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	// first account gets the admin role
	first := register(t, env, "first@example.com")
	if first.User.Role != user.RoleAdmin {
		t.Fatalf("first user role=%s, expected admin", first.User.Role)
	}
	second := register(t, env, "second@example.com")
	if second.User.Role != user.RoleCustomer {
		t.Fatalf("second user role=%s, expected customer", second.User.Role)
	}

	// duplicate email conflicts
	w := env.do(t, http.MethodPost, "/api/auth/register", RegisterRequest{
		Email:    "second@example.com",
		Password: "hunter2hunter2",
	}, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("status=%d, expected 409 for duplicate email", w.Code)
	}

	// short password rejected at binding
	w = env.do(t, http.MethodPost, "/api/auth/register", RegisterRequest{
		Email:    "third@example.com",
		Password: "short",
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, expected 400 for short password", w.Code)
	}

	w = env.do(t, http.MethodPost, "/api/auth/login", LoginRequest{
		Email:    "second@example.com",
		Password: "hunter2hunter2",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login: status=%d body=%s", w.Code, w.Body.String())
	}
	auth := decode[authResponse](t, w)

	w = env.do(t, http.MethodGet, "/api/auth/user", nil, bearer(auth.Token))
	if w.Code != http.StatusOK {
		t.Fatalf("auth/user: status=%d body=%s", w.Code, w.Body.String())
	}
	if me := decode[user.User](t, w); me.Email != "second@example.com" {
		t.Fatalf("me=%q", me.Email)
	}

	w = env.do(t, http.MethodPost, "/api/auth/login", LoginRequest{
		Email:    "second@example.com",
		Password: "wrong-password",
	}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, expected 401 for bad credentials", w.Code)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	auth := register(t, env, "ada@example.com")

	w := env.do(t, http.MethodPost, "/api/auth/logout", nil, bearer(auth.Token))
	if w.Code != http.StatusOK {
		t.Fatalf("logout: status=%d body=%s", w.Code, w.Body.String())
	}
	w = env.do(t, http.MethodGet, "/api/auth/user", nil, bearer(auth.Token))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, expected 401 after logout", w.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/auth/user", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, expected 401 without a token", w.Code)
	}
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	auth := register(t, env, "ada@example.com")

	w := env.do(t, http.MethodPatch, "/api/user/profile", UpdateProfileRequest{
		FirstName: "Ada",
		ShippingAddress: user.Address{
			Line1: "1 Analytical Way",
			City:  "London",
		},
	}, bearer(auth.Token))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	u := decode[user.User](t, w)
	if u.FirstName != "Ada" || u.ShippingAddress.City != "London" {
		t.Fatalf("profile not applied: %+v", u)
	}
	if u.Email != "ada@example.com" {
		t.Fatalf("email changed unexpectedly: %q", u.Email)
	}
}

func TestUserOrdersOwnership(t *testing.T) {
	env := newTestEnv(t)
	admin := register(t, env, "admin@example.com") // first user, so admin
	owner := register(t, env, "owner@example.com")
	other := register(t, env, "other@example.com")

	// place an order as the owner
	h := sessionHeader("owner-session")
	h["Authorization"] = "Bearer " + owner.Token
	env.do(t, http.MethodPost, "/api/cart", AddCartItemRequest{ProductID: "tote-daydream"}, h)
	w := env.do(t, http.MethodPost, "/api/checkout/demo", DemoCheckoutRequest{CustomerEmail: "owner@example.com"}, h)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout: status=%d body=%s", w.Code, w.Body.String())
	}
	placed := decode[order.Order](t, w)

	w = env.do(t, http.MethodGet, "/api/user/orders", nil, bearer(owner.Token))
	if w.Code != http.StatusOK {
		t.Fatalf("list orders: status=%d body=%s", w.Code, w.Body.String())
	}
	list := decode[[]order.OrderWithItems](t, w)
	if len(list) != 1 || list[0].ID != placed.ID {
		t.Fatalf("owner order list: %+v", list)
	}
	if len(list[0].Items) != 1 || list[0].Items[0].Product == nil {
		t.Fatalf("order items not hydrated: %+v", list[0].Items)
	}

	// owner and admin can read the order, a stranger cannot
	w = env.do(t, http.MethodGet, "/api/user/orders/"+placed.ID, nil, bearer(owner.Token))
	if w.Code != http.StatusOK {
		t.Fatalf("owner read: status=%d", w.Code)
	}
	w = env.do(t, http.MethodGet, "/api/user/orders/"+placed.ID, nil, bearer(admin.Token))
	if w.Code != http.StatusOK {
		t.Fatalf("admin read: status=%d", w.Code)
	}
	w = env.do(t, http.MethodGet, "/api/user/orders/"+placed.ID, nil, bearer(other.Token))
	if w.Code != http.StatusForbidden {
		t.Fatalf("stranger read: status=%d, expected 403", w.Code)
	}
}
