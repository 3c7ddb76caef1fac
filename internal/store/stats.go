package store

import (
	"context"
	"encoding/json"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string     `json:"db_path,omitempty"`
	DBSizeBytes int64      `json:"db_size_bytes,omitempty"`
	TotalKeys   int        `json:"total_keys"`
	ValueBytes  int        `json:"value_bytes"`
	Keys        []KeyStats `json:"keys"`
}

// KeyStats holds per-key sizes. Items is the array length for list values
// and -1 for scalars or undecodable values.
type KeyStats struct {
	Key   string `json:"key"`
	Bytes int    `json:"bytes"`
	Items int    `json:"items"`
}

// CollectStats returns statistics for every key in kv. dbPath may be empty
// for stores without a backing file.
func CollectStats(ctx context.Context, kv KV, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if dbPath != "" {
		if info, err := os.Stat(dbPath); err == nil {
			st.DBSizeBytes = info.Size()
		}
	}

	keys, err := kv.Keys(ctx)
	if err != nil {
		return st, err
	}

	for _, key := range keys {
		raw, ok, err := kv.Get(ctx, key)
		if err != nil {
			return st, err
		}
		if !ok {
			continue
		}
		ks := KeyStats{Key: key, Bytes: len(raw), Items: -1}
		var items []json.RawMessage
		if json.Unmarshal(raw, &items) == nil && items != nil {
			ks.Items = len(items)
		}
		st.TotalKeys++
		st.ValueBytes += len(raw)
		st.Keys = append(st.Keys, ks)
	}

	return st, nil
}
