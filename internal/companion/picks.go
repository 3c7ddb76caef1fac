package companion

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rcliao/neuronest/internal/content"
	"github.com/rcliao/neuronest/internal/rotation"
	"github.com/rcliao/neuronest/internal/store"
)

// PowerThought is the thought of the day.
type PowerThought struct {
	Date string `json:"date"`
	ID   string `json:"id"`
	Text string `json:"text"`
}

func journalReply(rng *rand.Rand) string {
	replies := content.JournalReplies()
	return replies[rng.Intn(len(replies))].Text
}

// NextActivity suggests an activity for mood without repeating recent picks.
// An empty mood uses the last mood check-in; moods without suggestions fall
// back to the default set.
func (s *Service) NextActivity(ctx context.Context, mood string) (content.Activity, error) {
	var out content.Activity
	err := s.update(ctx, func(t tx) error {
		if mood == "" {
			m, err := s.lastMood(ctx, t.kv)
			if err != nil {
				return err
			}
			mood = m
		}
		a, err := rotation.Pick(ctx, t.rotator, rotation.PoolActivity, content.ActivitiesFor(mood))
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	return out, err
}

// NextDistraction returns the next distraction.
func (s *Service) NextDistraction(ctx context.Context) (content.Distraction, error) {
	var out content.Distraction
	err := s.update(ctx, func(t tx) error {
		d, err := rotation.Pick(ctx, t.rotator, rotation.PoolDistraction, content.Distractions())
		if err != nil {
			return err
		}
		out = d
		return nil
	})
	return out, err
}

// NextAffirmation returns the next affirmation.
func (s *Service) NextAffirmation(ctx context.Context) (content.Affirmation, error) {
	var out content.Affirmation
	err := s.update(ctx, func(t tx) error {
		a, err := rotation.Pick(ctx, t.rotator, rotation.PoolAffirmation, content.Affirmations())
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	return out, err
}

// PowerThought returns today's thought, choosing a new one the first time it
// is asked for on a given calendar day.
func (s *Service) PowerThought(ctx context.Context) (PowerThought, error) {
	var out PowerThought
	today := s.clock().In(s.loc).Format("2006-01-02")
	err := s.update(ctx, func(t tx) error {
		var cached PowerThought
		ok, err := store.GetJSON(ctx, t.kv, KeyPowerThought, &cached)
		switch {
		case err != nil && !ok:
			return err
		case err != nil:
			s.logger.Printf("ignoring corrupt %s: %v", KeyPowerThought, err)
		case ok && cached.Date == today && cached.Text != "":
			out = cached
			return nil
		}

		line, err := rotation.Pick(ctx, t.rotator, rotation.PoolThought, content.PowerThoughts())
		if err != nil {
			return err
		}
		out = PowerThought{Date: today, ID: line.ID, Text: line.Text}
		return store.SetJSON(ctx, t.kv, KeyPowerThought, out)
	})
	return out, err
}

// ToggleFavorite adds the affirmation to favorites, or removes it if it is
// already there. Reports whether it is a favorite afterwards.
func (s *Service) ToggleFavorite(ctx context.Context, affirmationID string) (bool, error) {
	if _, ok := content.FindAffirmation(affirmationID); !ok {
		return false, fmt.Errorf("affirmation %q: %w", affirmationID, ErrNotFound)
	}
	var favorite bool
	err := s.update(ctx, func(t tx) error {
		ids, err := s.favoriteIDs(ctx, t.kv)
		if err != nil {
			return err
		}
		next := make([]string, 0, len(ids)+1)
		for _, id := range ids {
			if id != affirmationID {
				next = append(next, id)
			}
		}
		favorite = len(next) == len(ids)
		if favorite {
			next = append(next, affirmationID)
		}
		return store.SetJSON(ctx, t.kv, KeyFavorites, next)
	})
	return favorite, err
}

// Favorites returns the favorite affirmations in the order they were added.
func (s *Service) Favorites(ctx context.Context) ([]content.Affirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids, err := s.favoriteIDs(ctx, s.store)
	if err != nil {
		return nil, err
	}
	out := make([]content.Affirmation, 0, len(ids))
	for _, id := range ids {
		if a, ok := content.FindAffirmation(id); ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Service) favoriteIDs(ctx context.Context, kv store.KV) ([]string, error) {
	var ids []string
	ok, err := store.GetJSON(ctx, kv, KeyFavorites, &ids)
	if err != nil {
		if !ok {
			return nil, err
		}
		s.logger.Printf("ignoring corrupt %s: %v", KeyFavorites, err)
		return nil, nil
	}
	return ids, nil
}
