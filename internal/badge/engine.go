package badge

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/rcliao/neuronest/internal/aggregate"
	"github.com/rcliao/neuronest/internal/model"
	"github.com/rcliao/neuronest/internal/store"
)

// Storage keys.
const (
	KeyUnlocked = "badges"
	KeyUnseen   = "unviewedBadges"
)

// Engine evaluates a catalog against snapshots and persists unlocks. An
// Engine is bound to one KV; use With to bind it to a transaction.
type Engine struct {
	kv      store.KV
	catalog *Catalog
	clock   func() time.Time
	logger  *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time recorded on unlock notices.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithLogger sets the logger used to report corrupt stored data.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine returns an engine for catalog over kv.
func NewEngine(kv store.KV, catalog *Catalog, opts ...Option) *Engine {
	e := &Engine{
		kv:      kv,
		catalog: catalog,
		clock:   time.Now,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// With returns a copy of e that uses kv.
func (e *Engine) With(kv store.KV) *Engine {
	cp := *e
	cp.kv = kv
	return &cp
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Evaluate unlocks every locked badge whose predicate holds for snap, in
// catalog order, and returns the newly unlocked definitions. Badges already
// unlocked are never granted again.
func (e *Engine) Evaluate(ctx context.Context, snap aggregate.Snapshot) ([]Definition, error) {
	unlocked, err := e.unlocked(ctx)
	if err != nil {
		return nil, err
	}
	queue, err := e.queue(ctx)
	if err != nil {
		return nil, err
	}

	granted := make(map[string]bool, len(unlocked)+len(queue))
	for _, id := range unlocked {
		granted[id] = true
	}
	// A queued notice counts as unlocked even if the id list was lost.
	for _, n := range queue {
		if !granted[n.ID] {
			granted[n.ID] = true
			unlocked = append(unlocked, n.ID)
		}
	}

	var fresh []Definition
	now := e.clock()
	for _, d := range e.catalog.defs {
		if granted[d.ID] || !d.Predicate(snap) {
			continue
		}
		granted[d.ID] = true
		unlocked = append(unlocked, d.ID)
		queue = append(queue, model.BadgeNotice{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Icon:        d.Icon,
			UnlockedAt:  now,
		})
		fresh = append(fresh, d)
	}
	if len(fresh) == 0 {
		return nil, nil
	}

	// The unlocked set is written before the queue.
	if err := store.SetJSON(ctx, e.kv, KeyUnlocked, unlocked); err != nil {
		return nil, err
	}
	if err := store.SetJSON(ctx, e.kv, KeyUnseen, queue); err != nil {
		return nil, err
	}
	return fresh, nil
}

// Unlocked returns the unlocked badge ids in unlock order.
func (e *Engine) Unlocked(ctx context.Context) ([]string, error) {
	return e.unlocked(ctx)
}

// Unseen returns unlocked badges not yet acknowledged, oldest first.
func (e *Engine) Unseen(ctx context.Context) ([]model.BadgeNotice, error) {
	return e.queue(ctx)
}

// Acknowledge moves the given badges from unseen to seen. With no ids every
// queued badge is acknowledged. Ids not in the queue are ignored. Returns the
// acknowledged notices.
func (e *Engine) Acknowledge(ctx context.Context, ids ...string) ([]model.BadgeNotice, error) {
	queue, err := e.queue(ctx)
	if err != nil {
		return nil, err
	}
	if len(queue) == 0 {
		return nil, nil
	}

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var kept, acked []model.BadgeNotice
	for _, n := range queue {
		if len(ids) == 0 || want[n.ID] {
			acked = append(acked, n)
			continue
		}
		kept = append(kept, n)
	}
	if len(acked) == 0 {
		return nil, nil
	}

	// Make sure an acknowledged badge stays unlocked even if the id list
	// was lost.
	unlocked, err := e.unlocked(ctx)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		have[id] = true
	}
	changed := false
	for _, n := range acked {
		if !have[n.ID] {
			unlocked = append(unlocked, n.ID)
			changed = true
		}
	}
	if changed {
		if err := store.SetJSON(ctx, e.kv, KeyUnlocked, unlocked); err != nil {
			return nil, err
		}
	}

	if kept == nil {
		kept = []model.BadgeNotice{}
	}
	if err := store.SetJSON(ctx, e.kv, KeyUnseen, kept); err != nil {
		return nil, err
	}
	return acked, nil
}

// State returns the lifecycle state of one badge.
func (e *Engine) State(ctx context.Context, id string) (model.BadgeState, error) {
	statuses, err := e.states(ctx)
	if err != nil {
		return "", err
	}
	if st, ok := statuses[id]; ok {
		return st, nil
	}
	return model.BadgeLocked, nil
}

// List returns every catalog badge with its state, in catalog order.
func (e *Engine) List(ctx context.Context) ([]model.BadgeStatus, error) {
	statuses, err := e.states(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.BadgeStatus, 0, len(e.catalog.defs))
	for _, d := range e.catalog.defs {
		st, ok := statuses[d.ID]
		if !ok {
			st = model.BadgeLocked
		}
		out = append(out, model.BadgeStatus{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Icon:        d.Icon,
			State:       st,
		})
	}
	return out, nil
}

func (e *Engine) states(ctx context.Context) (map[string]model.BadgeState, error) {
	unlocked, err := e.unlocked(ctx)
	if err != nil {
		return nil, err
	}
	queue, err := e.queue(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]model.BadgeState, len(unlocked)+len(queue))
	for _, id := range unlocked {
		out[id] = model.BadgeUnlockedSeen
	}
	for _, n := range queue {
		out[n.ID] = model.BadgeUnlockedUnseen
	}
	return out, nil
}

func (e *Engine) unlocked(ctx context.Context) ([]string, error) {
	var ids []string
	if ok, err := store.GetJSON(ctx, e.kv, KeyUnlocked, &ids); err != nil {
		if !ok {
			return nil, err
		}
		e.logger.Printf("ignoring corrupt %s: %v", KeyUnlocked, err)
		return nil, nil
	}
	return dedupe(ids), nil
}

func (e *Engine) queue(ctx context.Context) ([]model.BadgeNotice, error) {
	var q []model.BadgeNotice
	if ok, err := store.GetJSON(ctx, e.kv, KeyUnseen, &q); err != nil {
		if !ok {
			return nil, err
		}
		e.logger.Printf("ignoring corrupt %s: %v", KeyUnseen, err)
		return nil, nil
	}
	return q, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
