package campbuidl

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCache_Memoizes(t *testing.T) {
	c := NewPageCache(time.Minute)
	var builds int
	build := func() ([]byte, error) {
		builds++
		return []byte("page"), nil
	}

	for i := 0; i < 3; i++ {
		b, err := c.Get("home", build)
		require.NoError(t, err)
		assert.Equal(t, "page", string(b))
	}
	assert.Equal(t, 1, builds)

	c.Invalidate()
	_, err := c.Get("home", build)
	require.NoError(t, err)
	assert.Equal(t, 2, builds)
}

func TestPageCache_Expires(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewPageCache(time.Minute)
	c.now = func() time.Time { return now }

	var builds int
	build := func() ([]byte, error) {
		builds++
		return []byte("page"), nil
	}
	_, _ = c.Get("k", build)
	now = now.Add(30 * time.Second)
	_, _ = c.Get("k", build)
	assert.Equal(t, 1, builds)

	now = now.Add(time.Minute)
	_, _ = c.Get("k", build)
	assert.Equal(t, 2, builds)
}

func TestPageCache_NoTTLNeverExpires(t *testing.T) {
	now := time.Now()
	c := NewPageCache(0)
	c.now = func() time.Time { return now }

	var builds int
	build := func() ([]byte, error) { builds++; return nil, nil }
	_, _ = c.Get("k", build)
	now = now.Add(24 * time.Hour)
	_, _ = c.Get("k", build)
	assert.Equal(t, 1, builds)
}

func TestPageCache_ErrorsAreNotCached(t *testing.T) {
	c := NewPageCache(time.Minute)
	boom := errors.New("boom")

	_, err := c.Get("k", func() ([]byte, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	b, err := c.Get("k", func() ([]byte, error) { return []byte("ok"), nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", string(b))
}

func TestPageCache_ConcurrentBuildsOnce(t *testing.T) {
	c := NewPageCache(time.Minute)
	var builds atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Get("k", func() ([]byte, error) {
				builds.Add(1)
				return []byte("x"), nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), builds.Load())
}
