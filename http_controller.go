package userauth

import (
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

// Response is the JSON envelope every auth endpoint returns. Tokens are
// only present on the success paths that issue them.
type Response struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`

	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// AuthControllerRoutes holds the mounted paths.
type AuthControllerRoutes struct {
	SignUp  string
	Login   string
	Refresh string
}

// AuthController exposes the three flows over HTTP.
type AuthController struct {
	Debug  bool
	Logger Logger
	Auther Authenticator
	Routes *AuthControllerRoutes
}

// AuthControllerOption configures the controller.
type AuthControllerOption func(*AuthController) *AuthController

// NewAuthController builds a controller from options.
func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger: defLogger{},
		Routes: &AuthControllerRoutes{
			SignUp:  "/auth/sign-up",
			Login:   "/auth/login",
			Refresh: "/auth/refresh-token",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Auther == nil {
		panic("Missing Authenticator in auth controller...")
	}

	return c
}

// WithAuthenticator sets the flow orchestrator.
func WithAuthenticator(auther Authenticator) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Auther = auther
		return c
	}
}

// WithControllerLogger sets the controller logger.
func WithControllerLogger(logger Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		if logger != nil {
			c.Logger = logger
		}
		return c
	}
}

// WithDebug enables debug payload logging. Passwords are never logged.
func WithDebug(debug bool) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Debug = debug
		return c
	}
}

// RegisterAuthRoutes mounts the three auth endpoints, each behind its
// validation gate.
func RegisterAuthRoutes(app *fiber.App, opts ...AuthControllerOption) *AuthController {
	controller := NewAuthController(opts...)

	app.Post(controller.Routes.SignUp, ValidateBody[SignupRequest](), controller.SignUpPost)
	app.Post(controller.Routes.Login, ValidateBody[LoginRequest](), controller.LoginPost)
	app.Post(controller.Routes.Refresh, controller.RefreshPost)

	return controller
}

// SignUpPost handles POST /auth/sign-up.
func (a *AuthController) SignUpPost(c *fiber.Ctx) error {
	payload, ok := PayloadFromCtx[SignupRequest](c)
	if !ok {
		return a.serverError(c, goerrors.New("sign-up payload missing from context", goerrors.CategoryInternal))
	}

	if a.Debug {
		a.Logger.Debug("sign-up payload: %s", print.MaybePrettyJSON(fiber.Map{
			"email":    payload.Email,
			"role":     payload.Role,
			"userName": payload.UserName,
		}))
	}

	if _, err := a.Auther.SignUp(c.UserContext(), payload); err != nil {
		return a.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(Response{
		Status:  fiber.StatusCreated,
		Code:    TextCodeCreateSuccess,
		Message: "User created successfully",
	})
}

// LoginPost handles POST /auth/login.
func (a *AuthController) LoginPost(c *fiber.Ctx) error {
	payload, ok := PayloadFromCtx[LoginRequest](c)
	if !ok {
		return a.serverError(c, goerrors.New("login payload missing from context", goerrors.CategoryInternal))
	}

	pair, err := a.Auther.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return a.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(Response{
		Status:       fiber.StatusOK,
		Code:         TextCodeSuccess,
		Message:      "Sign in success",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// RefreshPost handles POST /auth/refresh-token. The refresh token arrives
// as a bearer credential in the Authorization header.
func (a *AuthController) RefreshPost(c *fiber.Ctx) error {
	accessToken, err := a.Auther.Refresh(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return a.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(Response{
		Status:      fiber.StatusOK,
		Code:        TextCodeSuccess,
		AccessToken: accessToken,
	})
}

// respondError recovers taxonomy errors at the flow boundary and maps them
// to their fixed status and stable code. Anything outside the taxonomy is a
// generic server error that leaks no internal detail.
func (a *AuthController) respondError(c *fiber.Ctx, err error) error {
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && richErr.TextCode != "" && richErr.Code >= fiber.StatusBadRequest && richErr.Code < fiber.StatusInternalServerError {
		return c.Status(richErr.Code).JSON(Response{
			Status:  richErr.Code,
			Code:    richErr.TextCode,
			Message: richErr.Message,
		})
	}

	return a.serverError(c, err)
}

func (a *AuthController) serverError(c *fiber.Ctx, err error) error {
	a.Logger.Error("auth controller internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(Response{
		Status:  fiber.StatusInternalServerError,
		Code:    TextCodeServerError,
		Message: "An unexpected server error occurred",
	})
}
