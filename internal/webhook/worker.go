package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/openearth/chw-service/internal/config"
)

// Worker drains the classification event queue and delivers signed
// webhooks to the configured endpoint.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start launches the delivery goroutine. It runs until the context is
// canceled.
func (w *Worker) Start(ctx context.Context) {
	if w.cfg.WebhookURL == "" {
		w.logger.Info("Webhook URL not configured, delivery worker disabled")
		return
	}
	w.logger.Info("Starting webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping webhook worker.")
				return
			default:
				// BRPop with timeout 0 blocks until an event arrives.
				result, err := w.redisClient.BRPop(ctx, 0, webhookQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop classification event from Redis")
					time.Sleep(w.cfg.WebhookTimeout)
					continue
				}
				if len(result) < 2 {
					continue
				}
				w.deliver(ctx, []byte(result[1]))
			}
		}
	}()
}

// deliver posts one event payload, signed with the shared secret.
func (w *Worker) deliver(ctx context.Context, payload []byte) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		w.logger.WithError(err).Error("Failed to build webhook request")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Signature", sign(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		w.logger.WithError(err).Error("Webhook delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		w.logger.WithField("status", resp.StatusCode).Error("Webhook endpoint returned an error status")
		return
	}
	w.logger.WithField("status", resp.StatusCode).Debug("Webhook delivered")
}

func sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
