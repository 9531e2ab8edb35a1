// Package cache stores viewers' completed-lesson sets between requests.
//
// Completions are never revoked in normal flow, so every write only adds members.
// A key is a usable snapshot only once a loader has written snapshotMarker into it;
// members added by a completion alone do not make the key a hit.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/coursestore/backend/internal/progression"
	"github.com/go-redis/redis/v8"
)

// snapshotMarker marks a key holding the full completed set; it also keeps an empty set cacheable.
const snapshotMarker = "snapshot"

type redisCompletionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCompletionCache creates a completed-set cache backed by Redis sets
func NewRedisCompletionCache(client *redis.Client, ttl time.Duration) *redisCompletionCache {
	return &redisCompletionCache{
		client: client,
		ttl:    ttl,
	}
}

// completionKey returns the Redis key of a viewer's completed set in a course
func completionKey(viewerID, courseID int) string {
	return fmt.Sprintf("completions:%d:%d", courseID, viewerID)
}

// Get returns the cached completed set and whether a full snapshot was present
func (c *redisCompletionCache) Get(ctx context.Context, viewerID, courseID int) (progression.CompletedSet, bool, error) {
	members, err := c.client.SMembers(ctx, completionKey(viewerID, courseID)).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read completed set: %w", err)
	}

	set, snapshot, err := decodeMembers(members)
	if err != nil {
		return nil, false, err
	}
	if !snapshot {
		return nil, false, nil
	}
	return set, true, nil
}

// Set merges a completed set read from the store into the cache and marks it as a snapshot
//
// Members already cached are kept, so a snapshot read before a concurrent completion
// cannot drop that completion.
func (c *redisCompletionCache) Set(ctx context.Context, viewerID, courseID int, completed progression.CompletedSet) error {
	key := completionKey(viewerID, courseID)

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, encodeMembers(completed)...)
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write completed set: %w", err)
	}

	return nil
}

// Add records one completed lesson in the cached set
func (c *redisCompletionCache) Add(ctx context.Context, viewerID, courseID, lessonID int) error {
	key := completionKey(viewerID, courseID)

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, strconv.Itoa(lessonID))
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add completed lesson: %w", err)
	}

	return nil
}

// Invalidate drops the cached completed set so the next read goes to the store
func (c *redisCompletionCache) Invalidate(ctx context.Context, viewerID, courseID int) error {
	if err := c.client.Del(ctx, completionKey(viewerID, courseID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate completed set: %w", err)
	}
	return nil
}

// encodeMembers converts a completed set to Redis set members, marker included
func encodeMembers(completed progression.CompletedSet) []any {
	members := make([]any, 0, len(completed)+1)
	members = append(members, snapshotMarker)
	for _, id := range completed.IDs() {
		members = append(members, strconv.Itoa(id))
	}
	return members
}

// decodeMembers converts Redis set members back to a completed set and reports the marker
func decodeMembers(members []string) (progression.CompletedSet, bool, error) {
	set := progression.NewCompletedSet()
	snapshot := false
	for _, m := range members {
		if m == snapshotMarker {
			snapshot = true
			continue
		}
		id, err := strconv.Atoi(m)
		if err != nil {
			return nil, false, fmt.Errorf("invalid completed set member %q: %w", m, err)
		}
		set.Add(id)
	}
	return set, snapshot, nil
}
