package persistence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ViewCounter aggregates page views per document. Counters are keyed
// views:<type>:<slug> and only ever incremented; the worker is the single
// writer.
type ViewCounter struct {
	rdb *redis.Client
}

func NewViewCounter(rdb *redis.Client) *ViewCounter {
	return &ViewCounter{rdb: rdb}
}

func viewKey(documentType, slug string) string {
	return fmt.Sprintf("views:%s:%s", documentType, slug)
}

func (c *ViewCounter) Increment(ctx context.Context, documentType, slug string) (int64, error) {
	count, err := c.rdb.Incr(ctx, viewKey(documentType, slug)).Result()
	if err != nil {
		return 0, fmt.Errorf("increment view counter failed: %w", err)
	}
	return count, nil
}

func (c *ViewCounter) Get(ctx context.Context, documentType, slug string) (int64, error) {
	count, err := c.rdb.Get(ctx, viewKey(documentType, slug)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read view counter failed: %w", err)
	}
	return count, nil
}
