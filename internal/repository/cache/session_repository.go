package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"go.uber.org/zap"
)

// sessionRepository читает сессии сервиса авторизации.
// Значение по ключу <prefix><sid> - JSON {"user_id": "...", "admin_id": "..."}.
type sessionRepository struct {
	client    *redis.Client
	keyPrefix string
	logger    *zap.Logger
}

func NewSessionRepository(redis *Redis, keyPrefix string) repository.SessionRepository {
	return &sessionRepository{
		client:    redis.Client(),
		keyPrefix: keyPrefix,
		logger:    redis.logger,
	}
}

func (r *sessionRepository) GetIdentity(ctx context.Context, sessionID string) (domain.Identity, error) {
	if sessionID == "" {
		return domain.Anonymous, nil
	}

	data, err := r.client.Get(ctx, r.keyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return domain.Anonymous, nil
	}
	if err != nil {
		r.logger.Error("Failed to read session", zap.Error(err))
		return domain.Anonymous, fmt.Errorf("session get error: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		// Чужой формат сессии не должен ломать публичные запросы
		r.logger.Warn("Malformed session payload", zap.Error(err))
		return domain.Anonymous, nil
	}

	return identity, nil
}
