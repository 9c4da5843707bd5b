package ratelimit

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeClock is advanced manually by tests
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// newTestLimiter builds a limiter without the sweep goroutine, driven by a fake clock
func newTestLimiter(config *Config) (*Limiter, *fakeClock) {
	config.CleanupInterval = 0
	l := NewLimiter(config)
	clock := newFakeClock()
	l.now = clock.Now
	return l, clock
}

func TestTokenBucket_Take(t *testing.T) {
	now := time.Now()
	bucket := newTokenBucket(10, 1.0, now)

	for i := 0; i < 10; i++ {
		allowed, remaining, _ := bucket.take(now)
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 9-i, remaining)
	}

	allowed, remaining, resetTime := bucket.take(now)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
	assert.Equal(t, now.Add(10*time.Second), resetTime)
}

func TestTokenBucket_Refill(t *testing.T) {
	now := time.Now()
	bucket := newTokenBucket(2, 1.0, now)

	bucket.take(now)
	bucket.take(now)
	allowed, _, _ := bucket.take(now)
	require.False(t, allowed)
	assert.Equal(t, time.Second, bucket.nextToken(now))

	later := now.Add(1100 * time.Millisecond)
	allowed, _, _ = bucket.take(later)
	assert.True(t, allowed)
	allowed, _, _ = bucket.take(later)
	assert.False(t, allowed)
}

func TestTokenBucket_RefillCapsAtCapacity(t *testing.T) {
	now := time.Now()
	bucket := newTokenBucket(3, 1.0, now)

	_, remaining, resetTime := bucket.take(now.Add(time.Hour))
	assert.Equal(t, 2, remaining)
	assert.True(t, resetTime.After(now.Add(time.Hour)))
}

func TestLimiter_DefaultLimit(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("127.0.0.1", "/api/guidelines", http.MethodGet)
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := l.Allow("127.0.0.1", "/api/guidelines", http.MethodGet)
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.InDelta(t, float64(6*time.Second), float64(info.RetryAfter), float64(time.Millisecond))
}

func TestLimiter_GenerateEndpoint(t *testing.T) {
	l, clock := newTestLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("10.0.0.1", GeneratePath, http.MethodPost)
		require.True(t, allowed, "burst request %d", i+1)
		assert.Equal(t, 30, info.Limit)
	}

	allowed, info := l.Allow("10.0.0.1", GeneratePath, http.MethodPost)
	assert.False(t, allowed)
	assert.Equal(t, 2*time.Second, info.RetryAfter)

	// 30 per minute refills one token every two seconds
	clock.Advance(2 * time.Second)
	allowed, _ = l.Allow("10.0.0.1", GeneratePath, http.MethodPost)
	assert.True(t, allowed)

	// Other clients and cheap endpoints are unaffected
	allowed, _ = l.Allow("10.0.0.2", GeneratePath, http.MethodPost)
	assert.True(t, allowed)
	allowed, info = l.Allow("10.0.0.1", "/api/guidelines", http.MethodGet)
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_Unlimited(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})

	for i := 0; i < 20; i++ {
		allowed, info := l.Allow("127.0.0.1", "/health", http.MethodGet)
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)

		allowed, _ = l.Allow("127.0.0.1", GeneratePath, http.MethodOptions)
		require.True(t, allowed)
	}
	assert.Equal(t, 0, l.Len())
}

func TestLimiter_Whitelist(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	})

	for i := 0; i < 100; i++ {
		allowed, info := l.Allow("127.0.0.1", "/test", http.MethodGet)
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})

	allowed, _ := l.Allow("192.168.1.1", "/test", http.MethodGet)
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := l.Allow("127.0.0.1", GeneratePath, http.MethodPost)
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Hour})

	var wg sync.WaitGroup
	var allowedCount atomic.Int32
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := l.Allow("127.0.0.1", "/test", http.MethodGet); allowed {
				allowedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(100), allowedCount.Load())
}

func TestLimiter_Sweep(t *testing.T) {
	l, clock := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		IdleTTL:       time.Hour,
	})

	for i := 0; i < 10; i++ {
		l.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/test", http.MethodGet)
	}
	require.Equal(t, 10, l.Len())

	clock.Advance(30 * time.Minute)
	for i := 0; i < 5; i++ {
		l.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/test", http.MethodGet)
	}

	clock.Advance(45 * time.Minute)
	l.sweep()
	assert.Equal(t, 5, l.Len())
}

func TestLimiter_UnmatchedPathsShareBucket(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    3,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("10.0.0.1", fmt.Sprintf("/no-such-path-%d", i), http.MethodGet)
		assert.True(t, allowed)
	}
	allowed, _ := l.Allow("10.0.0.1", "/another-path", http.MethodGet)
	assert.False(t, allowed)

	allowed, _ = l.Allow("10.0.0.1", GeneratePath, http.MethodPost)
	assert.True(t, allowed)
	assert.Equal(t, 2, l.Len())
}

func TestLimiter_StopIsIdempotent(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute, CleanupInterval: time.Millisecond})
	l.Stop()
	l.Stop()
}

func TestNewLimiter_NilConfig(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	allowed, info := l.Allow("127.0.0.1", "/test", http.MethodGet)
	assert.True(t, allowed)
	assert.Equal(t, 600, info.Limit)

	allowed, info = l.Allow("127.0.0.1", GeneratePath, http.MethodPost)
	assert.True(t, allowed)
	assert.Equal(t, 30, info.Limit)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: GeneratePath, Method: http.MethodPost, Limit: 30},
		{Path: "/api/admin/", Method: http.MethodPost, Limit: 5},
	}

	assert.Equal(t, 30, MatchEndpoint(GeneratePath, http.MethodPost, configs).Limit)
	assert.Equal(t, 5, MatchEndpoint("/api/admin/reload", http.MethodPost, configs).Limit)
	assert.Nil(t, MatchEndpoint(GeneratePath, http.MethodGet, configs))
	assert.Nil(t, MatchEndpoint("/unknown", http.MethodPost, configs))
	assert.Equal(t, 0, MatchEndpoint("/health", http.MethodGet, configs).Limit)
	assert.Equal(t, 0, MatchEndpoint(GeneratePath, http.MethodOptions, configs).Limit)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_GENERATE_LIMIT", "12")
	t.Setenv("RATE_LIMIT_GENERATE_WINDOW", "1h")
	t.Setenv("RATE_LIMIT_WHITELIST", " 10.0.0.1, ,10.0.0.2 ")

	config := LoadConfig()
	assert.True(t, config.Enabled)
	assert.Equal(t, 600, config.DefaultLimit)
	require.Len(t, config.EndpointConfigs, 1)
	assert.Equal(t, 12, config.EndpointConfigs[0].Limit)
	assert.Equal(t, time.Hour, config.EndpointConfigs[0].Window)
	assert.Equal(t, 5, config.EndpointConfigs[0].Burst)
	assert.Equal(t, map[string]bool{"10.0.0.1": true, "10.0.0.2": true}, config.Whitelist)

	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
