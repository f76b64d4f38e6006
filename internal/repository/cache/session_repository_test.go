package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/repository/cache"
)

func TestSessionRepository_GetIdentity(t *testing.T) {
	rdb := getTestRedis(t)
	repo := cache.NewSessionRepository(rdb, "session:")
	ctx := context.Background()

	client := rdb.Client()
	require.NoError(t, client.Set(ctx, "session:u1", `{"user_id":"user-42"}`, time.Minute).Err())
	require.NoError(t, client.Set(ctx, "session:a1", `{"admin_id":"admin-7"}`, time.Minute).Err())
	require.NoError(t, client.Set(ctx, "session:bad", `not-json`, time.Minute).Err())

	tests := []struct {
		name string
		sid  string
		want domain.Identity
	}{
		{name: "user session", sid: "u1", want: domain.Identity{UserID: "user-42"}},
		{name: "admin session", sid: "a1", want: domain.Identity{AdminID: "admin-7"}},
		{name: "unknown session", sid: "nope", want: domain.Anonymous},
		{name: "empty id", sid: "", want: domain.Anonymous},
		{name: "malformed payload", sid: "bad", want: domain.Anonymous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetIdentity(ctx, tt.sid)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
