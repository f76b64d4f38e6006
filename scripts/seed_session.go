//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// sessionPayload - формат сессии, который читает API
type sessionPayload struct {
	UserID  string `json:"user_id,omitempty"`
	AdminID string `json:"admin_id,omitempty"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	prefix := flag.String("prefix", "session:", "Session key prefix")
	userID := flag.String("user", "", "User ID (default: random)")
	admin := flag.Bool("admin", false, "Create an admin session")
	ttl := flag.Duration("ttl", 24*time.Hour, "Session TTL")
	stream := flag.String("stream", "", "Also publish a route.updated event to this stream")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	id := *userID
	if id == "" {
		id = uuid.NewString()
	}

	payload := sessionPayload{UserID: id}
	if *admin {
		payload = sessionPayload{AdminID: id}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("Failed to marshal session: %v", err)
	}

	sid := uuid.NewString()
	if err := client.Set(ctx, *prefix+sid, data, *ttl).Err(); err != nil {
		log.Fatalf("Failed to write session: %v", err)
	}

	fmt.Printf("Session created\n")
	fmt.Printf("   Key: %s%s\n", *prefix, sid)
	fmt.Printf("   Payload: %s\n", data)
	fmt.Printf("\n   curl -H 'X-Session-ID: %s' http://localhost:8080/api/v1/routes/mine\n", sid)

	if *stream == "" {
		return
	}

	event, _ := json.Marshal(map[string]interface{}{
		"type":        "route.updated",
		"route_id":    uuid.Nil,
		"occurred_at": time.Now().UTC(),
	})
	msgID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: *stream,
		Values: map[string]interface{}{
			"data": string(event),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("\nEvent published to %s (message %s)\n", *stream, msgID)
}
