package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON decodes the value under key into v. It reports false when the key
// is missing. A decode failure is returned so callers can fall back to a zero
// value.
func GetJSON(ctx context.Context, kv KV, key string, v any) (bool, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, kv KV, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, b)
}

// AppendJSON encodes v and appends it to the array under key.
func AppendJSON(ctx context.Context, kv KV, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Append(ctx, key, b)
}

// appendRaw returns the array in current with elem added to its end. A value
// that is not a JSON array is replaced by a one-element array.
func appendRaw(current []byte, elem []byte) ([]byte, error) {
	if !json.Valid(elem) {
		return nil, fmt.Errorf("append: element is not valid json")
	}
	var items []json.RawMessage
	if len(current) > 0 {
		if err := json.Unmarshal(current, &items); err != nil {
			items = nil
		}
	}
	items = append(items, json.RawMessage(elem))
	return json.Marshal(items)
}
