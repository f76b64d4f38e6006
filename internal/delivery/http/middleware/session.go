package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"go.uber.org/zap"
)

const identityKey = "identity"

// Session определяет вызывающего по cookie (или заголовку) сессии.
// Ошибка хранилища сессий не блокирует запрос: вызывающий считается анонимным.
func Session(sessions repository.SessionRepository, cookieName, headerName string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cookieName)
		if sid == "" {
			sid = c.Get(headerName)
		}

		identity := domain.Anonymous
		if sid != "" {
			resolved, err := sessions.GetIdentity(c.UserContext(), sid)
			if err != nil {
				logger.Warn("Failed to resolve session", zap.Error(err))
			} else {
				identity = resolved
			}
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// GetIdentity возвращает вызывающего, установленного Session
func GetIdentity(c *fiber.Ctx) domain.Identity {
	if identity, ok := c.Locals(identityKey).(domain.Identity); ok {
		return identity
	}
	return domain.Anonymous
}
