package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mobileshop/pos-api/internal/application/auth"
	"github.com/mobileshop/pos-api/internal/application/dto"
)

// AuthHandler handles login, session introspection and logout.
type AuthHandler struct {
	uc        *auth.AuthUseCase
	cookieTTL time.Duration
}

// NewAuthHandler builds the handler. cookieTTL controls the pos_token
// cookie lifetime; it should match the JWT expiry.
func NewAuthHandler(uc *auth.AuthUseCase, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, cookieTTL: cookieTTL}
}

// Login authenticates the admin and sets the session cookie.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "email and password required")
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookieName,
		Value:    resp.Token,
		Expires:  time.Now().Add(h.cookieTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(resp)
}

// Me returns the authenticated admin.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.CurrentUser(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// Logout clears the session cookie.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"success": true})
}
