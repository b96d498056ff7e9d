package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"skillshub/backend/services"
	"skillshub/backend/utils"
)

const sessionCookieMaxAge = 7 * 24 * 60 * 60 // seconds

type SessionController struct {
	Gateway *services.AuthGateway
	Logger  *log.Logger
}

func NewSessionController(gateway *services.AuthGateway, logger *log.Logger) *SessionController {
	return &SessionController{Gateway: gateway, Logger: logger}
}

// Create godoc
// @Summary Start a session
// @Description Issues a session token and binds it to an HTTP-only cookie
// @Tags session
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /session [post]
func (sc *SessionController) Create(c *fiber.Ctx) error {
	var body struct {
		UserID string `json:"userId"`
		Name   string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if body.UserID == "" {
		return utils.BadRequest(c, "userId required")
	}

	token, err := sc.Gateway.SignIn(c.UserContext(), body.UserID)
	if err != nil {
		sc.Logger.Printf("sign in: %v", err)
		return utils.InternalServerError(c, "Internal error")
	}

	setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"name":    body.Name,
	})
}

// Destroy godoc
// @Summary End the current session
// @Description Revokes the session cookie's token; always succeeds
// @Tags session
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /session [delete]
func (sc *SessionController) Destroy(c *fiber.Ctx) error {
	if token := c.Cookies("session"); token != "" {
		if err := sc.Gateway.SignOut(c.UserContext(), token); err != nil {
			sc.Logger.Printf("sign out: %v", err)
		}
	}

	clearSessionCookie(c)

	return c.JSON(fiber.Map{"success": true})
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
