package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"skillshub/backend/config"
	"skillshub/backend/services"
	"skillshub/backend/utils"
)

// SessionTokenLocal and SessionUserLocal are the c.Locals keys filled in
// by SessionAuth.
const (
	SessionTokenLocal = "sessionToken"
	SessionUserLocal  = "sessionUserId"
)

// SessionToken pulls the opaque session token from the request: the
// "session" cookie first, then an Authorization bearer value.
func SessionToken(c *fiber.Ctx) string {
	if token := c.Cookies("session"); token != "" {
		return token
	}
	return strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
}

// SessionAuth resolves the session identity when one is present and
// stashes it in locals. It never rejects: endpoints that allow an
// explicit caller-supplied user id handle the anonymous case themselves.
func SessionAuth(gateway *services.AuthGateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := SessionToken(c)
		if token != "" {
			userID, err := gateway.ResolveIdentity(c.UserContext(), token, "")
			if err != nil {
				return utils.InternalServerError(c, "Internal error")
			}
			if userID != "" {
				c.Locals(SessionTokenLocal, token)
				c.Locals(SessionUserLocal, userID)
			}
		}
		return c.Next()
	}
}

// RequireSession rejects requests without a verified session identity.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, _ := c.Locals(SessionUserLocal).(string); userID == "" {
			return utils.Unauthorized(c, "Unauthorized. Please sign in.")
		}
		return c.Next()
	}
}

// AdminMiddleware guards the admin surface with the JWT bearer token and
// requires the configured admin account.
func AdminMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, email, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		if !strings.EqualFold(email, cfg.AdminEmail) {
			return utils.Forbidden(c, "Forbidden - Admin access required")
		}
		return c.Next()
	}
}
