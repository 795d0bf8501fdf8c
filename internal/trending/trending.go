// Package trending supplies the ordered trending-term list consumed by the
// suggestion engine. Terms are maintained independently of query history:
// either a static list from configuration or an externally updated Redis
// list.
package trending

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Source yields the current ordered trending terms.
type Source interface {
	Terms(ctx context.Context) ([]string, error)
}

// Static serves a fixed term list. Used when no Redis address is configured.
type Static struct {
	terms []string
}

// NewStatic creates a static source over the given terms.
func NewStatic(terms []string) *Static {
	return &Static{terms: terms}
}

// Terms returns a copy of the configured terms.
func (s *Static) Terms(_ context.Context) ([]string, error) {
	out := make([]string, len(s.terms))
	copy(out, s.terms)
	return out, nil
}

// redisKey is the Redis list holding trending terms in display order.
const redisKey = "trending:searches"

// RedisSource reads trending terms from a Redis list so operators can
// update them without a redeploy. An empty list falls back to the seed
// terms the source was created with.
type RedisSource struct {
	client *redis.Client
	seed   []string
}

// NewRedisSource creates a Redis-backed source with the given fallback terms.
func NewRedisSource(client *redis.Client, seed []string) *RedisSource {
	return &RedisSource{client: client, seed: seed}
}

// Terms returns the full trending list from Redis, or the seed terms when
// the list is empty. Redis errors propagate; the caller decides whether a
// degraded suggestion response is acceptable.
func (s *RedisSource) Terms(ctx context.Context) ([]string, error) {
	terms, err := s.client.LRange(ctx, redisKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange %s: %w", redisKey, err)
	}
	if len(terms) == 0 {
		out := make([]string, len(s.seed))
		copy(out, s.seed)
		return out, nil
	}
	return terms, nil
}

// Ping reports whether the Redis backend is reachable, for readiness checks.
func (s *RedisSource) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
