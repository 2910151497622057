package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/essaehaan/Profile/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrDecode means the credential's claims could not be read. It never
// reaches the user: the credential is simply treated as absent.
var ErrDecode = errors.New("credential claims cannot be decoded")

// Claims is the identity payload embedded in the credential.
type Claims struct {
	UserID models.ID `json:"id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Name   string    `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// DecodeClaims reads the payload segment of token without verifying its
// signature. The header is not inspected.
func DecodeClaims(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: token has %d segments", ErrDecode, len(parts))
	}
	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	claims := &Claims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return claims, nil
}

// Expired reports whether exp is at or before now, compared in whole
// seconds. A credential without exp does not expire on the client.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Unix() <= now.Unix()
}

// User builds the identity described by the claims. The id falls back to
// "sub" and the display name to the email.
func (c *Claims) User() User {
	id := c.UserID
	if id == "" {
		id = models.ID(c.Subject)
	}
	name := c.Name
	if name == "" {
		name = c.Email
	}
	return User{ID: id, Email: c.Email, Name: name, Role: RoleFromClaim(c.Role), RoleClaim: c.Role}
}
