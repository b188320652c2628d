package userauth

import "github.com/goliatone/go-errors"

// Stable wire codes. Clients key off these strings, never off messages.
const (
	TextCodeValidationError     = "VALIDATION_ERROR"
	TextCodeEmailExists         = "EMAIL_EXISTS"
	TextCodeEmailNotFound       = "EMAIL_NOT_FOUND"
	TextCodePasswordNotCorrect  = "PASSWORD_NOT_CORRECT"
	TextCodeRefreshTokenMissing = "REFRESH_TOKEN_NOT_FOUND"
	TextCodeRefreshTokenExpired = "REFRESH_TOKEN_EXPIRED"
	TextCodeRefreshTokenInvalid = "REFRESH_TOKEN_INVALID"
	TextCodeServerError         = "SERVER_ERROR"

	TextCodeTokenMissing   = "TOKEN_NOT_FOUND"
	TextCodeTokenExpired   = "TOKEN_EXPIRED"
	TextCodeTokenAudience  = "TOKEN_AUDIENCE_MISMATCH"
	TextCodeTokenMalformed = "TOKEN_MALFORMED"
)

// Success codes share the response envelope with the error taxonomy.
const (
	TextCodeSuccess       = "SUCCESS"
	TextCodeCreateSuccess = "CREATE_SUCCESS"
)

// ErrDuplicateEmail is reported by the credential store when the unique
// index on email rejects an insert.
var ErrDuplicateEmail = errors.New("email already registered", errors.CategoryConflict).
	WithTextCode(TextCodeEmailExists).
	WithCode(errors.CodeBadRequest)

// ErrIdentityNotFound is reported by the credential store when no user
// matches the requested email.
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryNotFound).
	WithTextCode(TextCodeEmailNotFound).
	WithCode(errors.CodeUnauthorized)

// ErrEmailExists is returned on sign-up when the email is already taken.
var ErrEmailExists = errors.New("email already registered", errors.CategoryConflict).
	WithTextCode(TextCodeEmailExists).
	WithCode(errors.CodeBadRequest)

// ErrEmailNotFound is returned on login when the email is unknown. The
// found-vs-not-found distinction is deliberately exposed to clients.
var ErrEmailNotFound = errors.New("email not found", errors.CategoryAuth).
	WithTextCode(TextCodeEmailNotFound).
	WithCode(errors.CodeUnauthorized)

// ErrPasswordNotCorrect is returned on login when the password does not
// match the stored digest.
var ErrPasswordNotCorrect = errors.New("password not correct", errors.CategoryAuth).
	WithTextCode(TextCodePasswordNotCorrect).
	WithCode(errors.CodeUnauthorized)

// ErrRefreshTokenMissing is returned when the Authorization header carries
// no bearer refresh token.
var ErrRefreshTokenMissing = errors.New("refresh token not found", errors.CategoryAuth).
	WithTextCode(TextCodeRefreshTokenMissing).
	WithCode(errors.CodeUnauthorized)

// ErrRefreshTokenExpired is returned when the presented refresh token has
// passed its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired", errors.CategoryAuth).
	WithTextCode(TextCodeRefreshTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrRefreshTokenInvalid covers every other refresh verification failure:
// bad signature, wrong issuer or audience, unexpected algorithm, garbage.
var ErrRefreshTokenInvalid = errors.New("refresh token invalid", errors.CategoryAuth).
	WithTextCode(TextCodeRefreshTokenInvalid).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMissing is returned by the access guard when the Authorization
// header carries no bearer token.
var ErrTokenMissing = errors.New("token not found", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMissing).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is the transport-agnostic verification outcome for an
// expired token, mapped to a flow-specific code at the flow boundary.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenAudience is the verification outcome for an audience mismatch.
var ErrTokenAudience = errors.New("token audience mismatch", errors.CategoryAuth).
	WithTextCode(TextCodeTokenAudience).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed covers structurally invalid tokens, bad signatures,
// wrong issuers, and rejected signing algorithms.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)
