// Package mongo holds helpers shared by the MongoDB repositories.
package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// WithTimeout bounds ctx by timeout, keeping an earlier caller deadline.
// A SessionContext is returned unchanged since wrapping it would detach the
// operation from its session.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

// Now is the timestamp stored in created_at/updated_at fields. Mongo keeps
// millisecond precision, so values round-trip unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
