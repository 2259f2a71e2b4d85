package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmic-community/intellect-mental-health-platform/pkg/logger"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestMemoryStore() (*MemoryStore, *clock) {
	c := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewMemoryStore()
	s.now = c.Now
	return s, c
}

func counting(body string, calls *atomic.Int32) RenderFunc {
	return func(context.Context) ([]byte, error) {
		calls.Add(1)
		return []byte(body), nil
	}
}

func TestPageCache_HitWithinWindow(t *testing.T) {
	store, clk := newTestMemoryStore()
	c := NewPageCache(store, time.Hour, logger.Discard())
	var calls atomic.Int32

	body, hit, err := c.Render(context.Background(), "home", counting("v1", &calls))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "v1", string(body))

	clk.Advance(59 * time.Minute)
	body, hit, err = c.Render(context.Background(), "home", counting("v2", &calls))
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "v1", string(body))
	assert.Equal(t, int32(1), calls.Load())
}

func TestPageCache_RegeneratesAfterWindow(t *testing.T) {
	store, clk := newTestMemoryStore()
	c := NewPageCache(store, time.Hour, logger.Discard())
	var calls atomic.Int32

	_, _, err := c.Render(context.Background(), "home", counting("v1", &calls))
	require.NoError(t, err)

	clk.Advance(time.Hour)
	body, hit, err := c.Render(context.Background(), "home", counting("v2", &calls))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "v2", string(body))
	assert.Equal(t, int32(2), calls.Load())
}

func TestPageCache_FailuresAreNotStored(t *testing.T) {
	store, _ := newTestMemoryStore()
	c := NewPageCache(store, time.Hour, logger.Discard())
	boom := errors.New("failed to fetch statistics")

	_, _, err := c.Render(context.Background(), "home", func(context.Context) ([]byte, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	var calls atomic.Int32
	body, hit, err := c.Render(context.Background(), "home", counting("ok", &calls))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, int32(1), calls.Load())
}

func TestPageCache_KeysAreIndependent(t *testing.T) {
	store, _ := newTestMemoryStore()
	c := NewPageCache(store, time.Hour, logger.Discard())
	var calls atomic.Int32

	home, _, err := c.Render(context.Background(), "home", counting("home", &calls))
	require.NoError(t, err)
	about, _, err := c.Render(context.Background(), "about", counting("about", &calls))
	require.NoError(t, err)

	assert.Equal(t, "home", string(home))
	assert.Equal(t, "about", string(about))
	assert.Equal(t, int32(2), calls.Load())
}

func TestPageCache_CollapsesConcurrentRenders(t *testing.T) {
	store, _ := newTestMemoryStore()
	c := NewPageCache(store, time.Hour, logger.Discard())

	var calls atomic.Int32
	release := make(chan struct{})
	fn := func(context.Context) ([]byte, error) {
		calls.Add(1)
		<-release
		return []byte("page"), nil
	}

	const callers = 10
	var wg sync.WaitGroup
	results := make([]string, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body, _, err := c.Render(context.Background(), "home", fn)
			assert.NoError(t, err)
			results[i] = string(body)
		}()
	}

	// Give every caller a chance to join the in-flight render.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "page", r)
	}
	assert.LessOrEqual(t, calls.Load(), int32(callers))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func TestPageCache_BrokenStoreStillRenders(t *testing.T) {
	c := NewPageCache(brokenStore{}, time.Hour, logger.Discard())
	var calls atomic.Int32

	for range 2 {
		body, hit, err := c.Render(context.Background(), "home", counting("page", &calls))
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, "page", string(body))
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestMemoryStore(t *testing.T) {
	store, clk := newTestMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "home")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "home", []byte("body"), time.Minute))
	body, ok, err := store.Get(ctx, "home")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "body", string(body))

	clk.Advance(time.Minute)
	_, ok, err = store.Get(ctx, "home")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, store.entries)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	store := NewRedisStore(client)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "home")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "home", []byte("<html>"), time.Hour))
	assert.True(t, mr.Exists("website:page:home"))
	assert.Equal(t, time.Hour, mr.TTL("website:page:home"))

	body, ok, err := store.Get(ctx, "home")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<html>", string(body))

	mr.FastForward(time.Hour)
	_, ok, err = store.Get(ctx, "home")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_PageCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	c := NewPageCache(NewRedisStore(client), time.Hour, logger.Discard())
	var calls atomic.Int32

	_, hit, err := c.Render(context.Background(), "about", counting("about", &calls))
	require.NoError(t, err)
	assert.False(t, hit)

	body, hit, err := c.Render(context.Background(), "about", counting("other", &calls))
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "about", string(body))
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(addr, "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}
