package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/sitekb/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_allows_first_request_immediately(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(1.0)

	start := time.Now()
	err := limiter.Wait(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestDomainLimiter_separate_domains_do_not_contend(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(1.0)

	start := time.Now()
	require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))
	require.NoError(t, limiter.Wait(context.Background(), "b.example.com"))
	require.NoError(t, limiter.Wait(context.Background(), "c.example.com"))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestDomainLimiter_throttles_same_domain(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(10.0) // 100ms between requests

	start := time.Now()
	require.NoError(t, limiter.Wait(context.Background(), "example.com"))
	require.NoError(t, limiter.Wait(context.Background(), "example.com"))
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestDomainLimiter_respects_context_cancellation(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(0.1) // 10s between requests

	require.NoError(t, limiter.Wait(context.Background(), "example.com"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx, "example.com")
	assert.Error(t, err)
}
