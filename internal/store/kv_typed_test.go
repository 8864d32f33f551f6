package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedAccessors(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	require.NoError(t, PutBool(ctx, kv, "is_dark_theme", true))
	b, err := GetBool(ctx, kv, "is_dark_theme")
	require.NoError(t, err)
	assert.True(t, b)

	require.NoError(t, PutInt64(ctx, kv, "user_id", 0))
	id, err := GetInt64(ctx, kv, "user_id")
	require.NoError(t, err)
	assert.Zero(t, id)

	require.NoError(t, PutJSON(ctx, kv, "technology_ids", []string{"1", "2"}))
	var ids []string
	require.NoError(t, GetJSON(ctx, kv, "technology_ids", &ids))
	assert.Equal(t, []string{"1", "2"}, ids)
}

func TestTypedAccessors_MissingAndMalformed(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	_, err := GetInt64(ctx, kv, "user_id")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Put(ctx, "user_id", "forty-two"))
	_, err = GetInt64(ctx, kv, "user_id")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Put(ctx, "is_dark_theme", "maybe"))
	_, err = GetBool(ctx, kv, "is_dark_theme")
	assert.Error(t, err)

	require.NoError(t, kv.Put(ctx, "directions", "[not json"))
	var dirs []string
	assert.Error(t, GetJSON(ctx, kv, "directions", &dirs))
}

func TestMemoryKeyValueStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	kv := NewMemoryKeyValueStore()
	assert.ErrorIs(t, kv.Put(ctx, "k", "v"), context.Canceled)

	ok, err := kv.Contains(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
