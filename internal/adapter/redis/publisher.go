// Package redis publishes notifications on per-user Redis pub/sub channels.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/lexicon-backend/internal/config"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

type pubClient interface {
	Publish(ctx context.Context, channel string, message any) *goredis.IntCmd
	Ping(ctx context.Context) *goredis.StatusCmd
}

// Publisher sends notifications to channel <prefix><userID>.
type Publisher struct {
	client pubClient
	prefix string
}

// NewClient connects to Redis and verifies the connection with PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewPublisher creates a publisher over an established client.
func NewPublisher(client pubClient, prefix string) *Publisher {
	return &Publisher{client: client, prefix: prefix}
}

// Channel returns the channel name for a recipient.
func (p *Publisher) Channel(n domain.Notification) string {
	return p.prefix + n.UserID.String()
}

// Ping checks the connection. It backs the optional redis health component.
func (p *Publisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Publish encodes n as JSON and publishes it on the recipient's channel.
func (p *Publisher) Publish(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(message{
		ID:        n.ID.String(),
		Type:      string(n.Type),
		Message:   n.Message,
		TermID:    uuidString(n.TermID),
		ActorID:   uuidString(n.ActorID),
		CreatedAt: n.CreatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("redis: encode notification: %w", err)
	}

	if err := p.client.Publish(ctx, p.Channel(n), payload).Err(); err != nil {
		return fmt.Errorf("redis: publish %s: %w", p.Channel(n), err)
	}
	return nil
}

type message struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	TermID    string    `json:"termId,omitempty"`
	ActorID   string    `json:"actorId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
