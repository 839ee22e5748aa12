package mem

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func TestLocalMemoStore(t *testing.T) {
	ctx := context.Background()
	store := NewLocalMemoStore(time.Minute, time.Minute)

	var got point
	ok, err := store.Get(ctx, "missing", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "rhodes", point{Lat: 36.4, Lng: 28.2}, 50*time.Millisecond))
	ok, err = store.Get(ctx, "rhodes", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, point{Lat: 36.4, Lng: 28.2}, got)

	time.Sleep(70 * time.Millisecond)
	ok, err = store.Get(ctx, "rhodes", &got)
	require.NoError(t, err)
	assert.False(t, ok, "entry should have expired")
}

func TestLocalMemoStore_IgnoresBlankKey(t *testing.T) {
	ctx := context.Background()
	store := NewLocalMemoStore(time.Minute, time.Minute)
	require.NoError(t, store.Set(ctx, "  ", 1, time.Minute))

	var v int
	ok, err := store.Get(ctx, "  ", &v)
	require.NoError(t, err)
	assert.False(t, ok)
}

type mockRedisKV struct {
	data   map[string][]byte
	ttl    time.Duration
	getErr error
}

func (m *mockRedisKV) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if m.getErr != nil {
		cmd.SetErr(m.getErr)
		return cmd
	}
	v, ok := m.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(string(v))
	return cmd
}

func (m *mockRedisKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = value.([]byte)
	m.ttl = expiration
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func TestRedisMemoStore(t *testing.T) {
	ctx := context.Background()
	kv := &mockRedisKV{data: map[string][]byte{}}
	store := newRedisMemoStore(kv)

	require.NoError(t, store.Set(ctx, "geo:rhodes", point{Lat: 1, Lng: 2}, time.Hour))
	assert.Contains(t, kv.data, "yourmyth:memo:geo:rhodes")
	assert.Equal(t, time.Hour, kv.ttl)

	var got point
	ok, err := store.Get(ctx, "geo:rhodes", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, point{Lat: 1, Lng: 2}, got)

	ok, err = store.Get(ctx, "geo:unknown", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	kv.getErr = errors.New("connection refused")
	_, err = store.Get(ctx, "geo:rhodes", &got)
	assert.Error(t, err)
}

func TestNewRedisMemoStore_NilClient(t *testing.T) {
	assert.Nil(t, NewRedisMemoStore(nil))
}
