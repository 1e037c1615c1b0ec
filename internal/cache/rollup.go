// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// rollup.go caches computed dashboard rollups in Valkey so repeated
// dashboard loads skip the aggregation queries.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// rollupKeyPrefix namespaces rollup keys in Valkey.
	rollupKeyPrefix = "rollup:"

	// DefaultRollupTTL is how long a computed rollup stays cached.
	DefaultRollupTTL = 60 * time.Second
)

// RollupCache stores JSON-serialized rollup payloads with a short TTL.
type RollupCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRollupCache creates a rollup cache backed by the given Valkey client.
func NewRollupCache(client *redis.Client, ttl time.Duration) *RollupCache {
	if ttl == 0 {
		ttl = DefaultRollupTTL
	}
	return &RollupCache{client: client, ttl: ttl}
}

// Get unmarshals a cached rollup into dst. Returns false on miss or error;
// cache failures only cost a recomputation.
func (c *RollupCache) Get(ctx context.Context, key string, dst any) bool {
	val, err := c.client.Get(ctx, rollupKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		slog.Warn("rollup cache get error", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(val, dst); err != nil {
		slog.Warn("rollup cache decode error", "key", key, "error", err)
		return false
	}
	return true
}

// Set stores a computed rollup with the configured TTL.
func (c *RollupCache) Set(ctx context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		slog.Warn("rollup cache encode error", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, rollupKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		slog.Warn("rollup cache set error", "key", key, "error", err)
	}
}
