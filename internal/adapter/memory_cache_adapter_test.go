package adapter

import (
	"context"
	"psychotest/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheAdapter_GetSet(t *testing.T) {
	m := NewMemoryCacheAdapter()
	ctx := context.Background()

	_, err := m.Get(ctx, sessionKey)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, m.Set(ctx, sessionKey, "first", time.Minute))
	require.NoError(t, m.Set(ctx, sessionKey, "second", time.Minute))

	val, err := m.Get(ctx, sessionKey)
	require.NoError(t, err)
	assert.Equal(t, "second", val)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryCacheAdapter_Expiration(t *testing.T) {
	m := NewMemoryCacheAdapter()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "short", "v", 50*time.Millisecond))
	require.NoError(t, m.Set(ctx, "forever", "v", 0))

	_, err := m.Get(ctx, "short")
	assert.NoError(t, err)

	require.Eventually(t, func() bool {
		_, err := m.Get(ctx, "short")
		return err != nil
	}, time.Second, 10*time.Millisecond)

	_, err = m.Get(ctx, "short")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	val, err := m.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestMemoryCacheAdapter_ReadsDoNotExtendLifetime(t *testing.T) {
	m := NewMemoryCacheAdapter()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "short", "v", 100*time.Millisecond))
	deadline := time.Now().Add(100 * time.Millisecond)

	require.Eventually(t, func() bool {
		_, err := m.Get(ctx, "short")
		return err != nil
	}, time.Second, 10*time.Millisecond)
	assert.False(t, time.Now().Before(deadline))
}

func TestMemoryCacheAdapter_Delete(t *testing.T) {
	m := NewMemoryCacheAdapter()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, sessionKey, "v", time.Minute))
	require.NoError(t, m.Delete(ctx, sessionKey))
	require.NoError(t, m.Delete(ctx, sessionKey))

	_, err := m.Get(ctx, sessionKey)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, m.Ping(ctx))
}

func TestMemoryCacheAdapter_RunRemovesExpiredEntries(t *testing.T) {
	m := NewMemoryCacheAdapter()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	require.NoError(t, m.Set(ctx, "a", "v", 20*time.Millisecond))
	require.NoError(t, m.Set(ctx, "b", "v", time.Hour))
	require.NoError(t, m.Set(ctx, "c", "v", 0))

	require.Eventually(t, func() bool { return m.Len() == 2 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
