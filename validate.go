package userauth

import (
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
)

var noSpaces = validation.Match(regexp.MustCompile(`^\S+$`)).Error("must not contain spaces")

// SignupRequest is the sign-up payload.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	UserName string `json:"userName"`
}

// Normalize lowercases the email and trims surrounding whitespace so every
// downstream comparison and lookup sees the canonical form.
func (r *SignupRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.UserName = strings.TrimSpace(r.UserName)
	r.Role = strings.TrimSpace(r.Role)
}

// Validate runs the sign-up schema.
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(0, 50), noSpaces),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 50), noSpaces),
		validation.Field(&r.Role, validation.Required, validation.In(ValidRoles...).Error("must be one of: user, admin")),
		validation.Field(&r.UserName, validation.Required, validation.Length(1, 50), noSpaces),
	)
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize lowercases the email.
func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Validate runs the login schema.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(0, 50), noSpaces),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 50), noSpaces),
	)
}

// Payload is any request body with a declarative schema.
type Payload interface {
	Validate() error
}

type normalizable interface {
	Normalize()
}

// FieldViolation is a single schema violation addressed by field path.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the envelope sent when the gate rejects input.
type ValidationErrorResponse struct {
	Status  int              `json:"status"`
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Errors  []FieldViolation `json:"errors"`
}

// FormatValidationErrors flattens an ozzo error into an ordered violation
// list. Ordering is by field path so responses stay deterministic.
func FormatValidationErrors(err error) []FieldViolation {
	verrs, ok := err.(validation.Errors)
	if !ok {
		return []FieldViolation{{Field: "body", Message: err.Error()}}
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	violations := make([]FieldViolation, 0, len(fields))
	for _, field := range fields {
		violations = append(violations, FieldViolation{
			Field:   field,
			Message: verrs[field].Error(),
		})
	}

	return violations
}

const payloadLocalKey = "userauth.payload"

// ValidateBody binds the JSON body into T, normalizes it, and runs its
// schema. On failure the request short-circuits with 400 VALIDATION_ERROR;
// the downstream handler never runs and never sees the raw input. On
// success the validated payload is stored in the request locals.
func ValidateBody[T Payload]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := new(T)

		if err := c.BodyParser(payload); err != nil {
			return validationFailure(c, []FieldViolation{
				{Field: "body", Message: "failed to parse request body"},
			})
		}

		if n, ok := any(payload).(normalizable); ok {
			n.Normalize()
		}

		if err := (*payload).Validate(); err != nil {
			return validationFailure(c, FormatValidationErrors(err))
		}

		c.Locals(payloadLocalKey, *payload)
		return c.Next()
	}
}

// PayloadFromCtx returns the validated payload stored by ValidateBody.
func PayloadFromCtx[T Payload](c *fiber.Ctx) (T, bool) {
	payload, ok := c.Locals(payloadLocalKey).(T)
	return payload, ok
}

func validationFailure(c *fiber.Ctx, violations []FieldViolation) error {
	return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
		Status:  fiber.StatusBadRequest,
		Code:    TextCodeValidationError,
		Message: "Validation failed",
		Errors:  violations,
	})
}
