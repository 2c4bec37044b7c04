package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 1, testLogger())

	t.Run("Same IP shares a limiter", func(t *testing.T) {
		l1 := limiter.GetLimiter("10.0.0.1")
		l2 := limiter.GetLimiter("10.0.0.1")
		assert.Same(t, l1, l2)
	})

	t.Run("Different IPs get independent limiters", func(t *testing.T) {
		l1 := limiter.GetLimiter("10.0.0.1")
		l2 := limiter.GetLimiter("10.0.0.2")
		assert.NotSame(t, l1, l2)
	})

	t.Run("Burst enforced", func(t *testing.T) {
		l := limiter.GetLimiter("10.0.0.3")
		assert.True(t, l.Allow())
		assert.False(t, l.Allow())
	})

	t.Run("Idle entries evicted", func(t *testing.T) {
		limiter.GetLimiter("10.0.0.4")
		limiter.mu.Lock()
		limiter.ips["10.0.0.4"].lastSeen = time.Now().Add(-time.Hour)
		limiter.mu.Unlock()

		limiter.evictIdle(10 * time.Minute)

		limiter.mu.Lock()
		_, exists := limiter.ips["10.0.0.4"]
		limiter.mu.Unlock()
		assert.False(t, exists)
	})

	t.Run("Cleanup loop stops on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		limiter.StartCleanup(ctx, 5*time.Millisecond, time.Nanosecond)
		time.Sleep(20 * time.Millisecond)
		cancel()
	})
}
