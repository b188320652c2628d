package userauth

import (
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
)

const claimsLocalKey = "userauth.claims"

// RequireAccessToken admits only requests carrying a valid bearer access
// token. Verified claims are stored in the request locals so downstream
// handlers can read the caller's identity without reparsing the token.
func RequireAccessToken(tokens TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return guardFailure(c, ErrTokenMissing)
		}

		claims, err := tokens.Verify(tokenString, tokens.AccessAudience())
		if err != nil {
			return guardFailure(c, err)
		}

		c.Locals(claimsLocalKey, claims)

		return c.Next()
	}
}

// ClaimsFromCtx returns the claims stored by RequireAccessToken.
func ClaimsFromCtx(c *fiber.Ctx) (AuthClaims, bool) {
	claims, ok := c.Locals(claimsLocalKey).(AuthClaims)
	return claims, ok
}

// guardFailure answers 401 with the verification outcome's stable code.
// Verify never fails without a taxonomy error, but anything unexpected
// still falls back to the malformed code rather than leaking detail.
func guardFailure(c *fiber.Ctx, err error) error {
	code := TextCodeTokenMalformed
	message := ErrTokenMalformed.Message

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && richErr.TextCode != "" {
		code = richErr.TextCode
		message = richErr.Message
	}

	return c.Status(fiber.StatusUnauthorized).JSON(Response{
		Status:  fiber.StatusUnauthorized,
		Code:    code,
		Message: message,
	})
}
