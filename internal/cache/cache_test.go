package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewClient(mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return New(client), mr
}

func TestAside_CachesOnMiss(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *string) func() error {
		return func() error {
			calls++
			*dest = "user-1"
			return nil
		}
	}

	var first string
	require.NoError(t, c.Aside(ctx, ShareKey("abc"), &first, ShareTTL, fetch(&first)))
	assert.Equal(t, "user-1", first)
	assert.True(t, mr.Exists("share:abc"))

	var second string
	require.NoError(t, c.Aside(ctx, ShareKey("abc"), &second, ShareTTL, fetch(&second)))
	assert.Equal(t, "user-1", second)
	assert.Equal(t, 1, calls, "second read must be served from Redis")
}

func TestAside_DoesNotCacheErrors(t *testing.T) {
	c, mr := newTestCache(t)
	boom := errors.New("not found")

	var dest string
	err := c.Aside(context.Background(), ShareKey("missing"), &dest, ShareTTL, func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("share:missing"))
}

func TestAside_FallsThroughWhenRedisDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	var dest string
	err := c.Aside(context.Background(), UserKey("u1"), &dest, UserTTL, func() error {
		dest = "alice"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", dest)
}

func TestInvalidate(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	require.NoError(t, c.SetJSON(ctx, ShareKey("h"), "u", ShareTTL))
	assert.True(t, mr.Exists("share:h"))

	c.Invalidate(ctx, ShareKey("h"))
	assert.False(t, mr.Exists("share:h"))
}

func TestNilCacheIsDisabled(t *testing.T) {
	var c *Cache
	assert.False(t, c.Enabled())

	var dest int
	require.NoError(t, c.Aside(context.Background(), "k", &dest, UserTTL, func() error {
		dest = 7
		return nil
	}))
	assert.Equal(t, 7, dest)
	c.Invalidate(context.Background(), "k")
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient("redis://:bad:url:/x")
	assert.Error(t, err)
}

func TestAside_KeepsValueWrittenDuringFetch(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	var owner string
	err := c.Aside(ctx, ShareKey("abc"), &owner, ShareTTL, func() error {
		owner = "user-1"
		return c.SetJSON(ctx, ShareKey("abc"), "", ShareTTL)
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", owner)

	stored, err := mr.Get("share:abc")
	require.NoError(t, err)
	assert.Equal(t, `""`, stored)
}
