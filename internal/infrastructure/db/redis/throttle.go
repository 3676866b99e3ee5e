package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const failureWindow = 15 * time.Minute

// LoginThrottle counts failed login attempts per email in Redis.
// Key format: login_fail:<email>, expiring after failureWindow.
// A limit of zero disables the throttle entirely.
type LoginThrottle struct {
	client *redis.Client
	limit  int64
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client, limit int) *LoginThrottle {
	return &LoginThrottle{client: client, limit: int64(limit)}
}

// TooManyFailures reports whether the email has exhausted its attempts
// inside the current window.
func (t *LoginThrottle) TooManyFailures(ctx context.Context, email string) (bool, error) {
	if t.limit <= 0 {
		return false, nil
	}

	n, err := t.client.Get(ctx, t.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.limit, nil
}

// RecordFailure increments the counter and refreshes its expiry.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	if t.limit <= 0 {
		return nil
	}

	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, t.key(email))
	pipe.Expire(ctx, t.key(email), failureWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record login failure: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	if t.limit <= 0 {
		return nil
	}
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return "login_fail:" + email
}
