package userauth_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/averde/userauth"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := userauth.SignupRequest{
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "user",
		UserName: "alice",
	}

	t.Run("valid payload", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	tests := []struct {
		name   string
		mutate func(r *userauth.SignupRequest)
		field  string
	}{
		{"missing email", func(r *userauth.SignupRequest) { r.Email = "" }, "email"},
		{"invalid email", func(r *userauth.SignupRequest) { r.Email = "not-an-email" }, "email"},
		{"email too long", func(r *userauth.SignupRequest) {
			r.Email = strings.Repeat("a", 48) + "@example.com"
		}, "email"},
		{"missing password", func(r *userauth.SignupRequest) { r.Password = "" }, "password"},
		{"short password", func(r *userauth.SignupRequest) { r.Password = "short" }, "password"},
		{"password with spaces", func(r *userauth.SignupRequest) { r.Password = "pass word 123" }, "password"},
		{"missing role", func(r *userauth.SignupRequest) { r.Role = "" }, "role"},
		{"unknown role", func(r *userauth.SignupRequest) { r.Role = "superuser" }, "role"},
		{"missing user name", func(r *userauth.SignupRequest) { r.UserName = "" }, "userName"},
		{"user name with spaces", func(r *userauth.SignupRequest) { r.UserName = "a lice" }, "userName"},
		{"user name too long", func(r *userauth.SignupRequest) { r.UserName = strings.Repeat("a", 51) }, "userName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := valid
			tt.mutate(&payload)

			err := payload.Validate()
			assert.Error(t, err)

			verrs, ok := err.(validation.Errors)
			assert.True(t, ok)
			assert.Contains(t, verrs, tt.field)
		})
	}
}

func TestSignupRequest_Normalize(t *testing.T) {
	payload := userauth.SignupRequest{
		Email:    "  A@Example.COM ",
		Password: "password123",
		Role:     " user ",
		UserName: " alice ",
	}

	payload.Normalize()

	assert.Equal(t, "a@example.com", payload.Email)
	assert.Equal(t, "user", payload.Role)
	assert.Equal(t, "alice", payload.UserName)
	assert.Equal(t, "password123", payload.Password, "passwords are never altered")
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		payload := userauth.LoginRequest{Email: "alice@example.com", Password: "password123"}
		assert.NoError(t, payload.Validate())
	})

	t.Run("missing credentials", func(t *testing.T) {
		err := userauth.LoginRequest{}.Validate()
		assert.Error(t, err)

		verrs, ok := err.(validation.Errors)
		assert.True(t, ok)
		assert.Contains(t, verrs, "email")
		assert.Contains(t, verrs, "password")
	})
}

func TestFormatValidationErrors(t *testing.T) {
	t.Run("orders violations by field path", func(t *testing.T) {
		violations := userauth.FormatValidationErrors(validation.Errors{
			"userName": errors.New("cannot be blank"),
			"email":    errors.New("must be a valid email address"),
			"password": errors.New("the length must be between 8 and 50"),
		})

		fields := make([]string, 0, len(violations))
		for _, v := range violations {
			fields = append(fields, v.Field)
		}

		assert.Equal(t, []string{"email", "password", "userName"}, fields)
	})

	t.Run("non schema errors fall back to a body violation", func(t *testing.T) {
		violations := userauth.FormatValidationErrors(errors.New("boom"))

		assert.Len(t, violations, 1)
		assert.Equal(t, "body", violations[0].Field)
	})
}

func TestValidateBody(t *testing.T) {
	newApp := func(handlerRan *bool) *fiber.App {
		app := fiber.New()
		app.Post("/echo", userauth.ValidateBody[userauth.SignupRequest](), func(c *fiber.Ctx) error {
			*handlerRan = true
			payload, ok := userauth.PayloadFromCtx[userauth.SignupRequest](c)
			if !ok {
				return c.SendStatus(fiber.StatusInternalServerError)
			}
			return c.JSON(payload)
		})
		return app
	}

	post := func(t *testing.T, app *fiber.App, body string) (*userauth.ValidationErrorResponse, int, []byte) {
		t.Helper()
		req := httptest.NewRequest(fiber.MethodPost, "/echo", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)

		var ver userauth.ValidationErrorResponse
		_ = json.Unmarshal(raw, &ver)
		return &ver, resp.StatusCode, raw
	}

	t.Run("rejects invalid payload before the handler runs", func(t *testing.T) {
		handlerRan := false
		app := newApp(&handlerRan)

		ver, status, _ := post(t, app, `{"email":"nope","password":"short","role":"x","userName":""}`)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, userauth.TextCodeValidationError, ver.Code)
		assert.False(t, handlerRan)
		assert.NotEmpty(t, ver.Errors)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		handlerRan := false
		app := newApp(&handlerRan)

		ver, status, _ := post(t, app, `{"email": `)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, userauth.TextCodeValidationError, ver.Code)
		assert.False(t, handlerRan)
	})

	t.Run("passes the normalized payload to the handler", func(t *testing.T) {
		handlerRan := false
		app := newApp(&handlerRan)

		_, status, raw := post(t, app, `{"email":"A@Example.com","password":"password123","role":"user","userName":"alice"}`)

		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, handlerRan)

		var echoed userauth.SignupRequest
		assert.NoError(t, json.Unmarshal(raw, &echoed))
		assert.Equal(t, "a@example.com", echoed.Email)
	})
}
