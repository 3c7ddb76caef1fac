// Package eventlog implements the append-only, per-category event log on top
// of a key-value store.
package eventlog

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rcliao/neuronest/internal/model"
	"github.com/rcliao/neuronest/internal/store"
)

// Storage keys, one per category.
const (
	KeyMood     = "moodHistory"
	KeyTool     = "toolUsage"
	KeyJournal  = "journalEntries"
	KeyChat     = "neuroBotMessages"
	KeyActivity = "completedActivities"
	KeySeq      = "events:seq"
)

// CategoryKey returns the storage key for a category.
func CategoryKey(c model.Category) (string, bool) {
	switch c {
	case model.CategoryMood:
		return KeyMood, true
	case model.CategoryTool:
		return KeyTool, true
	case model.CategoryJournal:
		return KeyJournal, true
	case model.CategoryChat:
		return KeyChat, true
	case model.CategoryActivity:
		return KeyActivity, true
	}
	return "", false
}

// Log is the event store. A Log is bound to one KV; use With to bind the same
// configuration to a transaction.
type Log struct {
	kv     store.KV
	clock  func() time.Time
	ids    *idSource
	logger *log.Logger
}

// Option configures a Log.
type Option func(*Log)

// WithClock sets the time source used for events without a timestamp.
func WithClock(clock func() time.Time) Option {
	return func(l *Log) { l.clock = clock }
}

// WithLogger sets the logger used to report corrupt stored data.
func WithLogger(logger *log.Logger) Option {
	return func(l *Log) { l.logger = logger }
}

// New returns a Log reading and writing through kv.
func New(kv store.KV, opts ...Option) *Log {
	l := &Log{
		kv:     kv,
		clock:  time.Now,
		ids:    newIDSource(),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// With returns a copy of l that uses kv, sharing its clock and id source.
func (l *Log) With(kv store.KV) *Log {
	cp := *l
	cp.kv = kv
	return &cp
}

// Append validates ev, assigns its id, sequence number and timestamp (when
// zero), and appends it to its category log. The stored event is returned.
func (l *Log) Append(ctx context.Context, ev model.Event) (model.Event, error) {
	if err := Validate(ev); err != nil {
		return model.Event{}, err
	}
	key, _ := CategoryKey(ev.Category)

	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = l.clock()
	}
	id, err := l.ids.newID(ev.OccurredAt)
	if err != nil {
		return model.Event{}, err
	}
	ev.ID = id

	seq, err := l.nextSeq(ctx)
	if err != nil {
		return model.Event{}, err
	}
	ev.Seq = seq

	if err := store.AppendJSON(ctx, l.kv, key, ev); err != nil {
		return model.Event{}, fmt.Errorf("append %s event: %w", ev.Category, err)
	}
	if err := store.SetJSON(ctx, l.kv, KeySeq, seq); err != nil {
		return model.Event{}, err
	}
	return ev, nil
}

// nextSeq returns one past the highest sequence number in use. A corrupt
// counter is rebuilt from the stored events.
func (l *Log) nextSeq(ctx context.Context) (int64, error) {
	var seq int64
	ok, err := store.GetJSON(ctx, l.kv, KeySeq, &seq)
	switch {
	case err != nil && !ok:
		return 0, err
	case err != nil:
		l.logger.Printf("rebuilding %s: %v", KeySeq, err)
	case ok:
		return seq + 1, nil
	}

	all, lerr := l.ListAll(ctx)
	if lerr != nil {
		return 0, lerr
	}
	var highest int64
	for _, ev := range all {
		if ev.Seq > highest {
			highest = ev.Seq
		}
	}
	return highest + 1, nil
}

// ListByCategory returns the events of one category in insertion order.
// Corrupt stored data is reported to the logger and read as empty.
func (l *Log) ListByCategory(ctx context.Context, c model.Category) ([]model.Event, error) {
	key, ok := CategoryKey(c)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", c)
	}

	var events []model.Event
	if ok, err := store.GetJSON(ctx, l.kv, key, &events); err != nil {
		if !ok {
			return nil, err
		}
		l.logger.Printf("ignoring corrupt %s: %v", key, err)
		return nil, nil
	}
	return events, nil
}

// ListAll returns every event across categories, oldest insertion first.
func (l *Log) ListAll(ctx context.Context) ([]model.Event, error) {
	var all []model.Event
	for _, c := range model.Categories {
		events, err := l.ListByCategory(ctx, c)
		if err != nil {
			return nil, err
		}
		all = append(all, events...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Seq < all[j].Seq
	})
	return all, nil
}

// idSource hands out ULIDs. Shared across Log copies.
type idSource struct {
	mu      sync.Mutex
	entropy *rand.Rand
}

func newIDSource() *idSource {
	return &idSource{entropy: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *idSource) newID(at time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if at.Before(time.Unix(0, 0)) {
		at = time.Unix(0, 0)
	}
	id, err := ulid.New(ulid.Timestamp(at), s.entropy)
	if err != nil {
		return "", fmt.Errorf("new event id: %w", err)
	}
	return id.String(), nil
}
