package userauth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
)

// TokenOptions controls how Mint assembles a token's claims.
type TokenOptions struct {
	// Audience scopes the token; required.
	Audience string
	// TTL sets the token lifetime relative to IssuedAt.
	TTL time.Duration
	// IssuedAt overrides the issuance time. Zero uses time.Now().
	IssuedAt time.Time
}

// Mint signs a token for the identity with the given audience and lifetime.
// IssueAccess and IssueRefresh route through here; tests use it directly to
// fabricate tokens with shifted issuance times.
func (ts *TokenServiceImpl) Mint(identity Identity, opts TokenOptions) (string, time.Time, error) {
	if identity == nil {
		return "", time.Time{}, goerrors.New("identity is required", goerrors.CategoryBadInput)
	}
	if opts.Audience == "" {
		return "", time.Time{}, goerrors.New("token audience is required", goerrors.CategoryBadInput)
	}
	if opts.TTL <= 0 {
		return "", time.Time{}, goerrors.New("token TTL must be positive", goerrors.CategoryBadInput)
	}

	issuedAt := opts.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}
	expiresAt := issuedAt.Add(opts.TTL)

	claims := &JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   identity.ID(),
			Audience:  jwt.ClaimStrings{opts.Audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UID:      identity.ID(),
		UserRole: identity.Role(),
	}

	token, err := ts.SignClaims(claims)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}
