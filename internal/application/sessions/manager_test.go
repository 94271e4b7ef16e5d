package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makelifebetter/storefront-service/internal/domain/checkout"
	"github.com/makelifebetter/storefront-service/internal/pkg/clock"
)

func TestManagerOpenAndGet(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	manager := NewManager(clk, 30*time.Minute)

	session := manager.Open("user-1")
	require.NotNil(t, session)
	assert.Equal(t, checkout.StepAddress, session.Step)

	got, ok := manager.Get("user-1")
	require.True(t, ok)
	assert.Same(t, session, got)

	_, ok = manager.Get("user-2")
	assert.False(t, ok)
}

func TestManagerOpenReplacesExisting(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	manager := NewManager(clk, 30*time.Minute)

	first := manager.Open("user-1")
	first.Complete()

	second := manager.Open("user-1")
	assert.NotSame(t, first, second)
	assert.Equal(t, checkout.StepAddress, second.Step)
	assert.Equal(t, 1, manager.Len())
}

func TestManagerClose(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	manager := NewManager(clk, 30*time.Minute)

	manager.Open("user-1")
	manager.Close("user-1")

	_, ok := manager.Get("user-1")
	assert.False(t, ok)
	assert.Zero(t, manager.Len())

	manager.Close("user-1")
}

func TestManagerPruneExpired(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	manager := NewManager(clk, 30*time.Minute)

	manager.Open("stale")
	clk.Advance(20 * time.Minute)
	manager.Open("fresh")

	clk.Advance(15 * time.Minute)

	assert.Equal(t, 1, manager.PruneExpired())
	assert.Equal(t, 1, manager.Len())

	_, ok := manager.Get("stale")
	assert.False(t, ok)
	_, ok = manager.Get("fresh")
	assert.True(t, ok)
}

func TestManagerPruneNothingExpired(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	manager := NewManager(clk, 30*time.Minute)

	manager.Open("user-1")
	clk.Advance(30 * time.Minute)

	assert.Zero(t, manager.PruneExpired(), "exactly at TTL is not yet expired")
	assert.Equal(t, 1, manager.Len())
}
