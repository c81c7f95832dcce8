package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/openearth/chw-service/internal/models"
)

const webhookQueueKey = "classification_events"

// Event is the payload delivered for every completed classification.
type Event struct {
	RunID       uuid.UUID   `json:"run_id"`
	CoastlineID float64     `json:"coastline_id"`
	Code        string      `json:"code"`
	Axes        models.Axes `json:"axes"`
	Slope       float64     `json:"slope"`
	Timestamp   time.Time   `json:"timestamp"`
}

// Publisher publishes classification events for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher queues events on a Redis list consumed by the worker.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish pushes the event onto the delivery queue.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal classification event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish classification event to Redis: %w", err)
	}
	return nil
}
