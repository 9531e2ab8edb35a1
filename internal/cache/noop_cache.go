package cache

import (
	"context"

	"github.com/coursestore/backend/internal/progression"
)

// NoopCompletionCache never stores anything. Used when Redis is not configured.
type NoopCompletionCache struct{}

// Get always misses
func (NoopCompletionCache) Get(ctx context.Context, viewerID, courseID int) (progression.CompletedSet, bool, error) {
	return nil, false, nil
}

// Set does nothing
func (NoopCompletionCache) Set(ctx context.Context, viewerID, courseID int, completed progression.CompletedSet) error {
	return nil
}

// Add does nothing
func (NoopCompletionCache) Add(ctx context.Context, viewerID, courseID, lessonID int) error {
	return nil
}

// Invalidate does nothing
func (NoopCompletionCache) Invalidate(ctx context.Context, viewerID, courseID int) error {
	return nil
}
