package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - middleware для настройки Cross-Origin Resource Sharing.
// Cookie сессии разрешены только для явного списка origins: fiber не допускает
// credentials вместе с "*".
func CORS(allowOrigins, sessionHeader string) fiber.Handler {
	wildcard := strings.TrimSpace(allowOrigins) == "*"
	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Accept-Language,Authorization," + sessionHeader,
		AllowCredentials: !wildcard,
	})
}
