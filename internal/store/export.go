package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ExportAll returns every value keyed by name, optionally limited to keys
// with the given prefix. Values that are not valid JSON are exported as JSON
// strings so the document stays parseable.
func ExportAll(ctx context.Context, kv KV, prefix string) (map[string]json.RawMessage, error) {
	keys, err := kv.Keys(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			continue
		}
		raw, ok, err := kv.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if !json.Valid(raw) {
			raw, _ = json.Marshal(string(raw))
		}
		out[key] = json.RawMessage(raw)
	}
	return out, nil
}

// Import writes every entry of an export into s atomically. Existing keys are
// overwritten. Returns the number of keys written.
func Import(ctx context.Context, s Store, entries map[string]json.RawMessage) (int, error) {
	var imported int
	err := s.Update(ctx, func(kv KV) error {
		var err error
		imported, err = ImportKV(ctx, kv, entries)
		return err
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}

// ImportKV writes entries through kv, which is usually an open transaction.
func ImportKV(ctx context.Context, kv KV, entries map[string]json.RawMessage) (int, error) {
	imported := 0
	for key, raw := range entries {
		if !json.Valid(raw) {
			return 0, fmt.Errorf("import %s: value is not valid json", key)
		}
		if err := kv.Set(ctx, key, raw); err != nil {
			return 0, err
		}
		imported++
	}
	return imported, nil
}
