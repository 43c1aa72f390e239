package models

// UserType defines the authorization tier of an authenticated account.
// It determines which dashboard tools are rendered for the user.
type UserType string

const (
	// UserTypeGuest is the restricted tier: only the search tool is available.
	UserTypeGuest UserType = "guest"

	// UserTypeUser is the full tier: the complete toolbar is available.
	UserTypeUser UserType = "user"
)

// Valid reports whether t is one of the known authorization tiers.
func (t UserType) Valid() bool {
	return t == UserTypeGuest || t == UserTypeUser
}

// User represents the identity attributes of an authenticated account as
// returned by the authentication backend. It carries no credentials; the
// session token lives in [Session].
type User struct {
	// Username is the unique login identifier.
	Username string `json:"username"`

	// UserType is the authorization tier ("guest" or "user").
	UserType UserType `json:"userType"`

	// Email is the contact address supplied at registration.
	Email string `json:"email"`
}

// IsGuest reports whether the user belongs to the restricted guest tier.
func (u User) IsGuest() bool {
	return u.UserType == UserTypeGuest
}
