//go:build unit

package ratelimit_test

import (
	"context"
	"testing"

	"shopcompare/internal/infra/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlimited(t *testing.T) {
	var b ratelimit.Unlimited
	for i := 0; i < 1000; i++ {
		ok, err := b.Allow(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestRedisBudget_ZeroLimitNeverCallsRedis(t *testing.T) {
	b := ratelimit.NewRedisBudget(nil, "serpapi", 0, 0, nil)
	ok, err := b.Allow(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}
