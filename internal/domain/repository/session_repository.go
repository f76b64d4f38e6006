package repository

import (
	"context"

	"github.com/tourism-route-service/internal/domain"
)

// SessionRepository читает сессии, выданные сервисом авторизации
type SessionRepository interface {
	// GetIdentity возвращает пользователя сессии или domain.Anonymous
	GetIdentity(ctx context.Context, sessionID string) (domain.Identity, error)
}
