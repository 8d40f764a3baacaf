package user

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSupervisor:
		return true
	}
	return false
}

// CanAdminister reports whether the role may use the admin surface.
func (r Role) CanAdminister() bool {
	return r == RoleAdmin || r == RoleSupervisor
}

type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type User struct {
	// ID is the external identity from the auth provider, or a locally
	// generated local_<uuid> for password accounts.
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Role            Role      `json:"role"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	ShippingAddress Address   `json:"shippingAddress"`
	PasswordHash    string    `json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Attrs carries fields for Upsert and PatchProfile. Empty strings mean
// "leave unchanged", matching partial updates from the auth provider.
type Attrs struct {
	Email           string
	FirstName       string
	LastName        string
	Phone           string
	ProfileImageURL string
	ShippingAddress Address
	PasswordHash    string
}
