package userauth

import (
	"context"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// Authenticator holds the three credential flows.
type Authenticator interface {
	SignUp(ctx context.Context, req SignupRequest) (*User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(authorization string) (string, error)
}

// Auther orchestrates sign-up, login, and refresh using the credential
// store, the password hasher, and the token service. It is stateless with
// respect to request data and never retries a failed store or crypto call.
type Auther struct {
	users  Users
	hasher PasswordAuthenticator
	tokens TokenService
	logger Logger
}

var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator.
func NewAuthenticator(users Users, tokens TokenService) *Auther {
	return &Auther{
		users:  users,
		hasher: NewArgon2Hasher(),
		tokens: tokens,
		logger: defLogger{},
	}
}

// WithLogger replaces the default logger.
func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithPasswordAuthenticator replaces the default argon2id hasher.
func (s *Auther) WithPasswordAuthenticator(hasher PasswordAuthenticator) *Auther {
	if hasher != nil {
		s.hasher = hasher
	}
	return s
}

// SignUp registers a new credential record: normalize email, generate a
// time-sortable id, hash the password, insert. A uniqueness conflict maps
// to ErrEmailExists and is not retried; the caller can correct and resubmit.
func (s *Auther) SignUp(ctx context.Context, req SignupRequest) (*User, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not generate user id")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("SignUp password hashing error: %v", err)
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not hash password")
	}

	user := &User{
		UserID:       id,
		UserEmail:    NormalizeEmail(req.Email),
		UserName:     req.UserName,
		UserRole:     req.Role,
		PasswordHash: hash,
	}

	record, err := s.users.Insert(ctx, user)
	if err != nil {
		if goerrors.Is(err, ErrDuplicateEmail) {
			s.logger.Info("SignUp rejected duplicate email")
			return nil, ErrEmailExists
		}
		s.logger.Error("SignUp insert error: %v", err)
		return nil, err
	}

	return record, nil
}

// Login verifies the credential pair and issues both token flavors. The
// found-vs-not-found distinction is deliberately exposed; neither outcome
// issues a token.
func (s *Auther) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if goerrors.Is(err, ErrIdentityNotFound) {
			return nil, ErrEmailNotFound
		}
		s.logger.Error("Login lookup error: %v", err)
		return nil, err
	}

	ok, err := s.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		s.logger.Error("Login digest verification error: %v", err)
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not verify password")
	}
	if !ok {
		return nil, ErrPasswordNotCorrect
	}

	accessToken, err := s.tokens.IssueAccess(user)
	if err != nil {
		s.logger.Error("Login access token issuance error: %v", err)
		return nil, err
	}

	refreshToken, err := s.tokens.IssueRefresh(user)
	if err != nil {
		s.logger.Error("Login refresh token issuance error: %v", err)
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh verifies a bearer refresh token from the Authorization header and
// issues a new access token. The refresh token itself is not rotated; it
// stays valid for its remaining lifetime.
func (s *Auther) Refresh(authorization string) (string, error) {
	token, ok := BearerToken(authorization)
	if !ok {
		return "", ErrRefreshTokenMissing
	}

	claims, err := s.tokens.Verify(token, s.tokens.RefreshAudience())
	if err != nil {
		if goerrors.Is(err, ErrTokenExpired) {
			return "", ErrRefreshTokenExpired
		}
		s.logger.Info("Refresh token rejected: %v", err)
		return "", ErrRefreshTokenInvalid
	}

	accessToken, err := s.tokens.IssueAccess(&claimsIdentity{
		id:   claims.UserID(),
		role: claims.Role(),
	})
	if err != nil {
		s.logger.Error("Refresh access token issuance error: %v", err)
		return "", err
	}

	return accessToken, nil
}

// BearerToken extracts the credential from an Authorization header value.
// Only the Bearer scheme is accepted; any other scheme reads as absent.
func BearerToken(authorization string) (string, bool) {
	const scheme = "Bearer "
	if len(authorization) <= len(scheme) {
		return "", false
	}
	if !strings.EqualFold(authorization[:len(scheme)], scheme) {
		return "", false
	}
	token := strings.TrimSpace(authorization[len(scheme):])
	return token, token != ""
}

// NormalizeEmail canonicalizes an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// claimsIdentity adapts verified token claims back into an Identity for
// re-issuance; only id and role survive the round trip.
type claimsIdentity struct {
	id   string
	role string
}

func (c *claimsIdentity) ID() string       { return c.id }
func (c *claimsIdentity) Username() string { return "" }
func (c *claimsIdentity) Email() string    { return "" }
func (c *claimsIdentity) Role() string     { return c.role }
