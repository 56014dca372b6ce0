package middleware

import (
	"strings"

	"classroom-player/internal/domain"
	"classroom-player/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	SessionIDKey        = "sessionID" // Key for storing the session id in fiber.Ctx locals
)

// SessionAuth requires a valid session token and stores its session id in
// the request locals.
func SessionAuth(tokens service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		claims, err := tokens.ValidateToken(c.UserContext(), tokenString)
		if err != nil {
			return domain.NewError(domain.CodeUnauthorized, "Invalid session token", err)
		}

		c.Locals(SessionIDKey, claims.SessionID)
		return c.Next()
	}
}

// SessionID returns the id stored by SessionAuth, or "".
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(SessionIDKey).(string)
	return id
}
