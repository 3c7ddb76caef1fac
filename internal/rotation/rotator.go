package rotation

import (
	"context"
	"io"
	"log"
	"math/rand"

	"github.com/rcliao/neuronest/internal/store"
)

// Pool names with their default history sizes.
const (
	PoolActivity    = "activity"
	PoolDistraction = "distraction"
	PoolAffirmation = "affirmation"
	PoolThought     = "thought"
)

// DefaultSizes is the history length kept per pool.
var DefaultSizes = map[string]int{
	PoolActivity:    2,
	PoolDistraction: 3,
	PoolAffirmation: 4,
	PoolThought:     3,
}

// HistoryKey returns the storage key for a pool's history.
func HistoryKey(pool string) string {
	return "rotation:" + pool
}

// Rotator keeps one persisted History per named pool. The rng is not safe
// for concurrent use; callers serialize access.
type Rotator struct {
	kv     store.KV
	rng    *rand.Rand
	sizes  map[string]int
	logger *log.Logger
}

// NewRotator returns a Rotator over kv. Pools missing from sizes keep a
// history of one.
func NewRotator(kv store.KV, rng *rand.Rand, sizes map[string]int, logger *log.Logger) *Rotator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Rotator{kv: kv, rng: rng, sizes: sizes, logger: logger}
}

// With returns a copy of r that uses kv.
func (r *Rotator) With(kv store.KV) *Rotator {
	cp := *r
	cp.kv = kv
	return &cp
}

// History loads the history for pool. Missing or corrupt data yields an
// empty history.
func (r *Rotator) History(ctx context.Context, pool string) (*History, error) {
	h := NewHistory(r.sizes[pool])
	var ids []string
	ok, err := store.GetJSON(ctx, r.kv, HistoryKey(pool), &ids)
	if err != nil {
		if !ok {
			return nil, err
		}
		r.logger.Printf("ignoring corrupt %s: %v", HistoryKey(pool), err)
		return h, nil
	}
	for _, id := range ids {
		h.Push(id)
	}
	return h, nil
}

func (r *Rotator) save(ctx context.Context, pool string, h *History) error {
	ids := h.IDs
	if ids == nil {
		ids = []string{}
	}
	return store.SetJSON(ctx, r.kv, HistoryKey(pool), ids)
}

// Pick selects the next item from items for the named pool and records it.
// items must not be empty.
func Pick[T Candidate](ctx context.Context, r *Rotator, pool string, items []T) (T, error) {
	var zero T
	h, err := r.History(ctx, pool)
	if err != nil {
		return zero, err
	}
	choice := Next(r.rng, items, h.IDs, h.Last())
	h.Push(choice.CandidateID())
	if err := r.save(ctx, pool, h); err != nil {
		return zero, err
	}
	return choice, nil
}
