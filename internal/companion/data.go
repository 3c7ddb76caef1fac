package companion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rcliao/neuronest/internal/aggregate"
	"github.com/rcliao/neuronest/internal/eventlog"
	"github.com/rcliao/neuronest/internal/model"
	"github.com/rcliao/neuronest/internal/store"
)

// Profile is the local identity of this installation.
type Profile struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats summarizes the events inside window.
func (s *Service) Stats(ctx context.Context, window aggregate.Window) (aggregate.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.events.ListAll(ctx)
	if err != nil {
		return aggregate.Summary{}, err
	}
	snap := aggregate.Build(all, s.loc).Window(window, s.clock())
	return snap.Summarize(window), nil
}

// History returns recorded events oldest first, limited to category c when
// it is set.
func (s *Service) History(ctx context.Context, c model.Category) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == "" {
		return s.events.ListAll(ctx)
	}
	return s.events.ListByCategory(ctx, c)
}

// Badges returns every catalog badge with its state.
func (s *Service) Badges(ctx context.Context) ([]model.BadgeStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.badges.List(ctx)
}

// Unseen returns unlocked badges that have not been acknowledged.
func (s *Service) Unseen(ctx context.Context) ([]model.BadgeNotice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.badges.Unseen(ctx)
}

// Acknowledge marks badges as seen. With no ids every unseen badge is marked.
func (s *Service) Acknowledge(ctx context.Context, ids ...string) ([]model.BadgeNotice, error) {
	var acked []model.BadgeNotice
	err := s.update(ctx, func(t tx) error {
		var err error
		acked, err = t.badges.Acknowledge(ctx, ids...)
		return err
	})
	return acked, err
}

// Export dumps every stored key.
func (s *Service) Export(ctx context.Context) (map[string]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return store.ExportAll(ctx, s.store, "")
}

// ImportResult reports what an import wrote and unlocked.
type ImportResult struct {
	Imported int                 `json:"imported"`
	Unlocked []model.BadgeNotice `json:"unlocked"`
}

// Import restores an export, overwriting existing keys. Event lists are
// validated before anything is written, and badges are evaluated against the
// imported events in the same transaction.
func (s *Service) Import(ctx context.Context, entries map[string]json.RawMessage) (ImportResult, error) {
	for key, raw := range entries {
		if err := eventlog.ValidateEntry(key, raw); err != nil {
			return ImportResult{}, fmt.Errorf("import: %w", err)
		}
	}

	var res ImportResult
	err := s.update(ctx, func(t tx) error {
		n, err := store.ImportKV(ctx, t.kv, entries)
		if err != nil {
			return err
		}
		unlocked, err := s.evaluate(ctx, t)
		if err != nil {
			return err
		}
		res = ImportResult{Imported: n, Unlocked: unlocked}
		return nil
	})
	return res, err
}

// Reset deletes all stored data.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Reset(ctx)
}

// Profile returns the local identity, creating it on first use.
func (s *Service) Profile(ctx context.Context) (Profile, error) {
	var p Profile
	err := s.update(ctx, func(t tx) error {
		ok, err := store.GetJSON(ctx, t.kv, KeyProfile, &p)
		if err != nil && !ok {
			return err
		}
		if err == nil && ok && p.ID != "" {
			return nil
		}
		if err != nil {
			s.logger.Printf("replacing corrupt %s: %v", KeyProfile, err)
		}
		p = Profile{ID: uuid.NewString(), CreatedAt: s.clock().UTC()}
		return store.SetJSON(ctx, t.kv, KeyProfile, p)
	})
	return p, err
}
