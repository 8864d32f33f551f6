package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Typed accessors over a [KeyValueStore]. Missing keys surface as
// [ErrKeyNotFound]; malformed values as a wrapped parse error.

func GetBool(ctx context.Context, kv KeyValueStore, key string) (bool, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %q as bool: %w", key, err)
	}
	return v, nil
}

func PutBool(ctx context.Context, kv KeyValueStore, key string, v bool) error {
	return kv.Put(ctx, key, strconv.FormatBool(v))
}

func GetInt64(ctx context.Context, kv KeyValueStore, key string) (int64, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q as int64: %w", key, err)
	}
	return v, nil
}

func PutInt64(ctx context.Context, kv KeyValueStore, key string, v int64) error {
	return kv.Put(ctx, key, strconv.FormatInt(v, 10))
}

// GetJSON decodes the JSON document stored under key into target.
func GetJSON(ctx context.Context, kv KeyValueStore, key string, target any) error {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

func PutJSON(ctx context.Context, kv KeyValueStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return kv.Put(ctx, key, string(raw))
}
