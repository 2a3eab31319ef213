// Package runid provides utilities for tagging a pipeline execution with a unique ID.
// Every log entry emitted during a run carries the same ID so that discovery, fetch,
// and output stages can be correlated after the fact.
package runid

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// RunIDKey is the context key for storing run IDs.
const RunIDKey contextKey = "run_id"

// New generates a new run ID (UUID v4).
func New() string {
	return uuid.New().String()
}

// FromContext retrieves the run ID from the context.
// Returns an empty string if no run ID is found.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RunIDKey).(string); ok {
		return id
	}
	return ""
}

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RunIDKey, id)
}
