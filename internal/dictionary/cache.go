package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheTTL bounds how long a cached candidate list is trusted. The
// index is immutable after load (spec.md §3 ownership) so staleness
// is not a correctness concern; this only bounds memory growth.
const CacheTTL = 10 * time.Minute

// CachingIndex decorates an Index with a Redis-backed read-through
// cache over by-clue and by-pattern queries, the two query shapes the
// solver's fallback ladder (spec.md §4.4.1) re-runs most often against
// the same slot pattern across DFS/A*/Hybrid backtracking. Grounded on
// internal/db's redis.ParseURL/redis.NewClient connection idiom,
// repurposed here for a read-through query cache instead of session
// storage.
type CachingIndex struct {
	*Index
	client *redis.Client
	prefix string
}

// NewCachingIndex wraps idx with a cache backed by the Redis instance
// reachable at redisURL. The wrapper is best-effort: a Redis outage
// degrades to calling straight through to idx, it never turns a cache
// problem into a solver/generator error.
func NewCachingIndex(idx *Index, redisURL, prefix string) (*CachingIndex, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &CachingIndex{Index: idx, client: client, prefix: prefix}, nil
}

// Close releases the underlying Redis connection.
func (c *CachingIndex) Close() error {
	return c.client.Close()
}

func (c *CachingIndex) get(ctx context.Context, key string, out *[]Candidate) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (c *CachingIndex) set(ctx context.Context, key string, val []Candidate) {
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, CacheTTL)
}

// ByClue caches on (prefix, clue, minLen, maxLen, max).
func (c *CachingIndex) ByClue(clue string, minLen, maxLen, max int) []Candidate {
	ctx := context.Background()
	key := fmt.Sprintf("%s:clue:%s:%d:%d:%d", c.prefix, clue, minLen, maxLen, max)

	var cached []Candidate
	if c.get(ctx, key, &cached) {
		return cached
	}

	result := c.Index.ByClue(clue, minLen, maxLen, max)
	c.set(ctx, key, result)
	return result
}

// ByPattern caches on (prefix, pattern, tokens, max).
func (c *CachingIndex) ByPattern(pattern string, clueTokens []string, max int) []Candidate {
	ctx := context.Background()
	key := fmt.Sprintf("%s:pattern:%s:%v:%d", c.prefix, pattern, clueTokens, max)

	var cached []Candidate
	if c.get(ctx, key, &cached) {
		return cached
	}

	result := c.Index.ByPattern(pattern, clueTokens, max)
	c.set(ctx, key, result)
	return result
}
