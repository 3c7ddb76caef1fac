// Package companion implements the user-facing operations. Every mutating
// operation appends its events, recomputes the snapshot and evaluates badges
// inside one store transaction.
package companion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/rcliao/neuronest/internal/aggregate"
	"github.com/rcliao/neuronest/internal/badge"
	"github.com/rcliao/neuronest/internal/content"
	"github.com/rcliao/neuronest/internal/dispatch"
	"github.com/rcliao/neuronest/internal/eventlog"
	"github.com/rcliao/neuronest/internal/model"
	"github.com/rcliao/neuronest/internal/rotation"
	"github.com/rcliao/neuronest/internal/store"
)

// Storage keys owned by the service.
const (
	KeyLastMood     = "lastMood"
	KeyPowerThought = "powerThought"
	KeyFavorites    = "favoriteAffirmations"
	KeyProfile      = "profile"
)

// ErrNotFound is returned for unknown activity or affirmation ids.
var ErrNotFound = errors.New("not found")

// Outcome is the result of a recorded user action.
type Outcome struct {
	Events   []model.Event       `json:"events"`
	Reply    string              `json:"reply,omitempty"`
	Topic    dispatch.Topic      `json:"topic,omitempty"`
	Unlocked []model.BadgeNotice `json:"unlocked"`
}

// Service is safe for concurrent use.
type Service struct {
	mu sync.Mutex

	store      store.Store
	events     *eventlog.Log
	badges     *badge.Engine
	rotator    *rotation.Rotator
	dispatcher *dispatch.Dispatcher

	clock   func() time.Time
	loc     *time.Location
	rng     *rand.Rand
	logger  *log.Logger
	catalog *badge.Catalog
	sizes   map[string]int
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source for events, badges and the daily thought.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// WithLocation sets the zone used for calendar days.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// WithRand sets the random source for rotation and replies.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithLogger sets the logger for corrupt stored data.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithCatalog replaces the default badge catalog.
func WithCatalog(c *badge.Catalog) Option {
	return func(s *Service) { s.catalog = c }
}

// WithHistorySizes overrides the per-pool rotation history sizes.
func WithHistorySizes(sizes map[string]int) Option {
	return func(s *Service) { s.sizes = sizes }
}

// New returns a Service over st.
func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:   st,
		clock:   time.Now,
		loc:     time.Local,
		logger:  log.New(io.Discard, "", 0),
		catalog: badge.DefaultCatalog(),
		sizes:   rotation.DefaultSizes,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(s.clock().UnixNano()))
	}

	s.events = eventlog.New(st, eventlog.WithClock(s.clock), eventlog.WithLogger(s.logger))
	s.badges = badge.NewEngine(st, s.catalog, badge.WithClock(s.clock), badge.WithLogger(s.logger))
	s.rotator = rotation.NewRotator(st, s.rng, s.sizes, s.logger)
	s.dispatcher = dispatch.New(s.rng)
	return s
}

// tx holds the components bound to one transaction.
type tx struct {
	kv      store.KV
	events  *eventlog.Log
	badges  *badge.Engine
	rotator *rotation.Rotator
}

func (s *Service) update(ctx context.Context, fn func(t tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Update(ctx, func(kv store.KV) error {
		return fn(tx{
			kv:      kv,
			events:  s.events.With(kv),
			badges:  s.badges.With(kv),
			rotator: s.rotator.With(kv),
		})
	})
}

// record appends evs, rebuilds the all-time snapshot and evaluates badges.
func (s *Service) record(ctx context.Context, t tx, evs ...model.Event) ([]model.Event, []model.BadgeNotice, error) {
	stored := make([]model.Event, 0, len(evs))
	for _, ev := range evs {
		saved, err := t.events.Append(ctx, ev)
		if err != nil {
			return nil, nil, err
		}
		stored = append(stored, saved)
	}

	notices, err := s.evaluate(ctx, t)
	if err != nil {
		return nil, nil, err
	}
	return stored, notices, nil
}

// evaluate rebuilds the all-time snapshot and returns the badges it unlocks.
func (s *Service) evaluate(ctx context.Context, t tx) ([]model.BadgeNotice, error) {
	all, err := t.events.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	fresh, err := t.badges.Evaluate(ctx, aggregate.Build(all, s.loc))
	if err != nil {
		return nil, fmt.Errorf("evaluate badges: %w", err)
	}
	if len(fresh) == 0 {
		return []model.BadgeNotice{}, nil
	}

	queue, err := t.badges.Unseen(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(fresh))
	for _, d := range fresh {
		ids[d.ID] = true
	}
	notices := make([]model.BadgeNotice, 0, len(fresh))
	for _, n := range queue {
		if ids[n.ID] {
			notices = append(notices, n)
		}
	}
	return notices, nil
}

// LogMood records a mood check-in and remembers it as the last mood.
func (s *Service) LogMood(ctx context.Context, mood string) (Outcome, error) {
	var out Outcome
	err := s.update(ctx, func(t tx) error {
		evs, unlocked, err := s.record(ctx, t, model.NewMood(mood))
		if err != nil {
			return err
		}
		if err := store.SetJSON(ctx, t.kv, KeyLastMood, mood); err != nil {
			return err
		}
		out = Outcome{Events: evs, Reply: content.MoodReply(mood), Unlocked: unlocked}
		return nil
	})
	return out, err
}

// UseTool records that a tool was opened.
func (s *Service) UseTool(ctx context.Context, tool string) (Outcome, error) {
	var out Outcome
	err := s.update(ctx, func(t tx) error {
		evs, unlocked, err := s.record(ctx, t, model.NewToolUsage(tool))
		if err != nil {
			return err
		}
		out = Outcome{Events: evs, Unlocked: unlocked}
		return nil
	})
	return out, err
}

// Journal records a dump zone entry with a supportive reply. The entry also
// counts as a use of the dump tool.
func (s *Service) Journal(ctx context.Context, text string) (Outcome, error) {
	var out Outcome
	err := s.update(ctx, func(t tx) error {
		reply := journalReply(s.rng)
		evs, unlocked, err := s.record(ctx, t,
			model.NewJournal(text, reply),
			model.NewToolUsage("dump"),
		)
		if err != nil {
			return err
		}
		out = Outcome{Events: evs, Reply: reply, Unlocked: unlocked}
		return nil
	})
	return out, err
}

// Chat records a user message and the bot's reply. The exchange also counts
// as a use of the neurobot tool.
func (s *Service) Chat(ctx context.Context, text string) (Outcome, error) {
	var out Outcome
	err := s.update(ctx, func(t tx) error {
		reply := s.dispatcher.Respond(text)
		evs, unlocked, err := s.record(ctx, t,
			model.NewChat(model.RoleUser, text),
			model.NewChat(model.RoleBot, reply.Text),
			model.NewToolUsage("neurobot"),
		)
		if err != nil {
			return err
		}
		out = Outcome{Events: evs, Reply: reply.Text, Topic: reply.Topic, Unlocked: unlocked}
		return nil
	})
	return out, err
}

// CompleteActivity records a finished activity tagged with the last mood.
func (s *Service) CompleteActivity(ctx context.Context, activityID string) (Outcome, error) {
	if _, ok := content.FindActivity(activityID); !ok {
		return Outcome{}, fmt.Errorf("activity %q: %w", activityID, ErrNotFound)
	}
	var out Outcome
	err := s.update(ctx, func(t tx) error {
		mood, err := s.lastMood(ctx, t.kv)
		if err != nil {
			return err
		}
		evs, unlocked, err := s.record(ctx, t, model.NewActivity(activityID, mood))
		if err != nil {
			return err
		}
		out = Outcome{Events: evs, Unlocked: unlocked}
		return nil
	})
	return out, err
}

// LastMood returns the most recent mood check-in, or "" if there is none.
func (s *Service) LastMood(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMood(ctx, s.store)
}

func (s *Service) lastMood(ctx context.Context, kv store.KV) (string, error) {
	var mood string
	ok, err := store.GetJSON(ctx, kv, KeyLastMood, &mood)
	if err != nil {
		if !ok {
			return "", err
		}
		s.logger.Printf("ignoring corrupt %s: %v", KeyLastMood, err)
		return "", nil
	}
	if !model.ValidMoods[mood] {
		return "", nil
	}
	return mood, nil
}
