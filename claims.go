package userauth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the verified view of a token's claims.
type AuthClaims interface {
	Subject() string
	UserID() string
	Role() string
	Audience() []string
	IssuedAt() time.Time
	Expires() time.Time
}

// JWTClaims is the concrete claim set carried by every issued token. The
// audience is fixed at issuance and checked at verification; an access
// token never validates as a refresh token and vice versa.
type JWTClaims struct {
	jwt.RegisteredClaims
	UID      string   `json:"uid,omitempty"`
	UserRole UserRole `json:"role,omitempty"`
}

var _ AuthClaims = (*JWTClaims)(nil)

// Subject returns the subject claim, the user id.
func (c *JWTClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user id, falling back to the subject claim.
func (c *JWTClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject()
}

// Role returns the role claim.
func (c *JWTClaims) Role() string {
	return c.UserRole
}

// Audience returns the audience claim.
func (c *JWTClaims) Audience() []string {
	return c.RegisteredClaims.Audience
}

// IssuedAt returns the issuance time, zero when unset.
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// Expires returns the expiration time, zero when unset.
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}
