package auth

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Authenticator is the part of Service the handler needs.
type Authenticator interface {
	SignUp(ctx context.Context, creds *Credentials) (*Session, error)
	SignIn(ctx context.Context, creds *Credentials) (*Session, error)
}

type Handler struct {
	authService Authenticator
	validate    *validator.Validate
}

// NewHandler creates a new auth handler
func NewHandler(authService Authenticator) *Handler {
	return &Handler{
		authService: authService,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts signup and login on router.
func (h *Handler) RegisterRoutes(router fiber.Router) {
	router.Post("/signup", h.Signup)
	router.Post("/login", h.Login)
}

// Signup godoc
// @Summary Sign up with email and password
// @Description Forwards the credentials to the store's signup primitive
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body Credentials true "Signup credentials"
// @Success 200 {object} SignupResponse
// @Failure 400 {object} map[string]string
// @Router /signup [post]
func (h *Handler) Signup(c *fiber.Ctx) error {
	creds, err := h.parseCredentials(c)
	if err != nil {
		return err
	}

	session, err := h.authService.SignUp(c.UserContext(), creds)
	if err != nil {
		return h.fail(c, "signup", err)
	}

	return c.JSON(SignupResponse{
		Message: "User created successfully",
		UserID:  session.UserID,
	})
}

// Login godoc
// @Summary Login with email and password
// @Description Forwards the credentials to the store's password grant
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body Credentials true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string
// @Router /login [post]
func (h *Handler) Login(c *fiber.Ctx) error {
	creds, err := h.parseCredentials(c)
	if err != nil {
		return err
	}

	session, err := h.authService.SignIn(c.UserContext(), creds)
	if err != nil {
		return h.fail(c, "login", err)
	}

	return c.JSON(LoginResponse{
		Message:      "Login successful",
		UserID:       session.UserID,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		TokenType:    session.TokenType,
		ExpiresIn:    session.ExpiresIn,
	})
}

func (h *Handler) parseCredentials(c *fiber.Ctx) (*Credentials, error) {
	var creds Credentials
	if err := c.BodyParser(&creds); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(&creds); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "A valid email and a password are required")
	}
	return &creds, nil
}

// fail maps every auth failure to 400. Store rejections keep the store's
// message; transport failures get a generic one.
func (h *Handler) fail(c *fiber.Ctx, op string, err error) error {
	if msg, ok := RejectionMessage(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": msg})
	}

	log.Error().Err(err).Str("op", op).Msg("❌ Auth request failed")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": op + " failed"})
}
