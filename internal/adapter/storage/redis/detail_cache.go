package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"deadletter-watchdog/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

const detailKeyPrefix = "deadletter:detail:"

// DetailCache implements ports.DetailCache on top of Redis. Transaction
// details are immutable once the event is dead-lettered, so a short TTL
// only bounds memory, not staleness.
type DetailCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewDetailCache creates a Redis-backed transaction detail cache.
func NewDetailCache(client *goredis.Client, ttl time.Duration) *DetailCache {
	return &DetailCache{client: client, ttl: ttl}
}

// GetTransactionDetail returns the cached detail for a transaction, or
// nil, nil on a cache miss.
func (c *DetailCache) GetTransactionDetail(ctx context.Context, transactionID string) (*domain.TransactionDetail, error) {
	data, err := c.client.Get(ctx, detailKeyPrefix+transactionID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached detail: %w", err)
	}

	var detail domain.TransactionDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, fmt.Errorf("unmarshal cached detail: %w", err)
	}
	return &detail, nil
}

// SetTransactionDetail stores the detail with the configured TTL.
func (c *DetailCache) SetTransactionDetail(ctx context.Context, transactionID string, detail *domain.TransactionDetail) error {
	data, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("marshal detail: %w", err)
	}

	if err := c.client.Set(ctx, detailKeyPrefix+transactionID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached detail: %w", err)
	}
	return nil
}
