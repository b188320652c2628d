package userauth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// TokenService issues and verifies the two bearer-token flavors. An issuer
// holds only the immutable signing key and configured issuer/audience
// strings; it keeps no state between requests.
type TokenService interface {
	IssueAccess(identity Identity) (string, error)
	IssueRefresh(identity Identity) (string, error)
	Verify(tokenString, expectedAudience string) (AuthClaims, error)
	AccessAudience() string
	RefreshAudience() string
}

// TokenConfig is the slice of configuration the token service consumes.
type TokenConfig interface {
	GetSigningKey() string
	GetIssuer() string
	GetAccessAudience() string
	GetRefreshAudience() string
	GetAccessTTL() time.Duration
	GetRefreshTTL() time.Duration
}

// TokenServiceImpl implements the TokenService interface.
type TokenServiceImpl struct {
	signingKey      []byte
	issuer          string
	accessAudience  string
	refreshAudience string
	accessTTL       time.Duration
	refreshTTL      time.Duration
	logger          Logger
}

var _ TokenService = (*TokenServiceImpl)(nil)

// NewTokenService creates a new TokenService instance from configuration
// fixed at process start.
func NewTokenService(cfg TokenConfig, logger Logger) *TokenServiceImpl {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenServiceImpl{
		signingKey:      []byte(cfg.GetSigningKey()),
		issuer:          cfg.GetIssuer(),
		accessAudience:  cfg.GetAccessAudience(),
		refreshAudience: cfg.GetRefreshAudience(),
		accessTTL:       cfg.GetAccessTTL(),
		refreshTTL:      cfg.GetRefreshTTL(),
		logger:          logger,
	}
}

// AccessAudience returns the configured access audience string.
func (ts *TokenServiceImpl) AccessAudience() string { return ts.accessAudience }

// RefreshAudience returns the configured refresh audience string.
func (ts *TokenServiceImpl) RefreshAudience() string { return ts.refreshAudience }

// IssueAccess signs a short-lived token scoped to the access audience.
func (ts *TokenServiceImpl) IssueAccess(identity Identity) (string, error) {
	token, _, err := ts.Mint(identity, TokenOptions{
		Audience: ts.accessAudience,
		TTL:      ts.accessTTL,
	})
	return token, err
}

// IssueRefresh signs a long-lived token scoped to the refresh audience.
func (ts *TokenServiceImpl) IssueRefresh(identity Identity) (string, error) {
	token, _, err := ts.Mint(identity, TokenOptions{
		Audience: ts.refreshAudience,
		TTL:      ts.refreshTTL,
	})
	return token, err
}

// SignClaims signs arbitrary JWT claims using the configured signing key.
func (ts *TokenServiceImpl) SignClaims(claims *JWTClaims) (string, error) {
	if claims == nil {
		return "", errors.New("claims must not be nil", errors.CategoryInternal)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign JWT")
	}

	return signedString, nil
}

// Verify parses and validates a token string against the expected audience.
// Each failure mode stays distinguishable: ErrTokenExpired for a passed
// expiry, ErrTokenAudience for an audience mismatch, ErrTokenMalformed for
// everything else (bad signature, wrong issuer, rejected algorithm).
func (ts *TokenServiceImpl) Verify(tokenString, expectedAudience string) (AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("TokenService verify encountered unexpected signing method: %v", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ts.issuer),
		jwt.WithAudience(expectedAudience),
		jwt.WithIssuedAt(),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenInvalidAudience):
			return nil, ErrTokenAudience
		default:
			return nil, errors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
				WithTextCode(ErrTokenMalformed.TextCode)
		}
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		ts.logger.Error("TokenService verify could not decode claims")
		return nil, ErrTokenMalformed
	}

	if claims.RegisteredClaims.Issuer == "" || len(claims.RegisteredClaims.Audience) == 0 {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
