package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIdempotencyStore_CheckAndSetExisting(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	err := client.Set(ctx, store.prefix+"voucher-req-1", `{"voucher_number":"P24001"}`, time.Minute).Err()
	require.NoError(t, err)

	exists, resp, err := store.CheckAndSet(ctx, "voucher-req-1", nil, time.Minute)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, `{"voucher_number":"P24001"}`, string(resp))
}

func TestIdempotencyStore_CheckAndSetLocksNewKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, resp, err := store.CheckAndSet(ctx, "voucher-req-2", nil, time.Minute)
	require.NoError(t, err)
	require.False(t, exists)
	require.Nil(t, resp)

	val, err := client.Get(ctx, store.prefix+"voucher-req-2").Result()
	require.NoError(t, err)
	require.Equal(t, "processing", val)
}

func TestIdempotencyStore_Update(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	err := store.Update(ctx, "voucher-req-3", []byte(`{"voucher_number":"R24002"}`), time.Minute)
	require.NoError(t, err)

	val, err := client.Get(ctx, store.prefix+"voucher-req-3").Result()
	require.NoError(t, err)
	require.Equal(t, `{"voucher_number":"R24002"}`, val)
}
