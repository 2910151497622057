package session

import "github.com/essaehaan/Profile/internal/client/models"

// User is the signed-in identity.
type User struct {
	ID    models.ID
	Email string
	Name  string
	Role  Role

	// RoleClaim is the raw "role" claim, kept for display.
	RoleClaim string
}

// Context is an immutable snapshot of the session taken at one point in
// time. The zero value is a guest.
type Context struct {
	User *User
}

// Guest returns the unauthenticated context.
func Guest() Context {
	return Context{}
}

// NewContext returns the context of an authenticated user.
func NewContext(u User) Context {
	return Context{User: &u}
}

func (c Context) Authenticated() bool {
	return c.User != nil
}

func (c Context) Role() Role {
	if c.User == nil {
		return RoleGuest
	}
	return c.User.Role
}

func (c Context) IsAdmin() bool {
	return c.Role() == RoleAdmin
}
