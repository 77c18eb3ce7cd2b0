package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	r, err := New(context.Background(), Config{URL: "redis://" + s.Addr(), Prefix: "gifts"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r, s
}

func TestNew(t *testing.T) {
	t.Run("MissingAddress", func(t *testing.T) {
		_, err := New(context.Background(), Config{})
		assert.Error(t, err)
	})

	t.Run("InvalidURL", func(t *testing.T) {
		_, err := New(context.Background(), Config{URL: "://bad"})
		assert.Error(t, err)
	})

	t.Run("Address", func(t *testing.T) {
		s := miniredis.RunT(t)
		r, err := New(context.Background(), Config{Address: s.Addr()})
		require.NoError(t, err)
		defer r.Close()
		assert.NoError(t, r.Ping(context.Background()))
	})
}

func TestGetSet(t *testing.T) {
	r, s := setupTestRedis(t)
	ctx := context.Background()

	_, err := r.Get(ctx, "gifts:product:1")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, r.Set(ctx, "gifts:product:1", []byte(`{"product":null}`), time.Minute))

	val, err := r.Get(ctx, "gifts:product:1")
	require.NoError(t, err)
	assert.Equal(t, `{"product":null}`, string(val))

	s.FastForward(2 * time.Minute)
	_, err = r.Get(ctx, "gifts:product:1")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestDel(t *testing.T) {
	r, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, r.Del(ctx, "k"))
	assert.NoError(t, r.Del(ctx))

	_, err := r.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestKey(t *testing.T) {
	r := &Redis{prefix: "gifts"}
	assert.Equal(t, "gifts:product:42", r.Key("product", "42"))
	assert.Equal(t, "gifts:sku:7", r.Key("sku", " ", "7"))

	bare := &Redis{}
	assert.Equal(t, "sku:7", bare.Key("sku", "7"))
}

func TestUninitialized(t *testing.T) {
	r := &Redis{}
	ctx := context.Background()

	_, err := r.Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, r.Set(ctx, "k", nil, 0))
	assert.Error(t, r.Ping(ctx))
	assert.NoError(t, r.Close())
}
