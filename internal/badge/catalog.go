// Package badge evaluates the achievement rule table and tracks which badges
// have been unlocked and acknowledged.
package badge

import (
	"fmt"

	"github.com/rcliao/neuronest/internal/aggregate"
	"github.com/rcliao/neuronest/internal/model"
)

// Predicate decides whether a badge is earned for a snapshot.
type Predicate func(aggregate.Snapshot) bool

// Definition is one static catalog entry.
type Definition struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Predicate   Predicate
}

// Catalog is an ordered set of definitions with unique ids.
type Catalog struct {
	defs []Definition
	byID map[string]int
}

// NewCatalog builds a catalog, rejecting duplicate or empty ids and missing
// predicates.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]int, len(defs))}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("badge %q: empty id", d.Name)
		}
		if d.Predicate == nil {
			return nil, fmt.Errorf("badge %s: nil predicate", d.ID)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("badge %s: duplicate id", d.ID)
		}
		c.byID[d.ID] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	return c, nil
}

// MustCatalog is NewCatalog that panics on error.
func MustCatalog(defs ...Definition) *Catalog {
	c, err := NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Definitions returns the catalog entries in order.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Lookup returns the definition with the given id.
func (c *Catalog) Lookup(id string) (Definition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// AtLeast returns a predicate true once a category holds n or more events.
func AtLeast(category model.Category, n int) Predicate {
	return func(s aggregate.Snapshot) bool {
		return s.Count(category) >= n
	}
}

// DefaultCatalog is the fixed rule table. Predicates read the all-time
// snapshot.
func DefaultCatalog() *Catalog {
	return MustCatalog(
		Definition{
			ID:          "mood-tracker",
			Name:        "Mood Tracker",
			Description: "Logged 5+ moods",
			Icon:        "🏆",
			Predicate:   AtLeast(model.CategoryMood, 5),
		},
		Definition{
			ID:          "journaling-star",
			Name:        "Journaling Star",
			Description: "Used Dump Zone 3+ times",
			Icon:        "✍️",
			Predicate:   AtLeast(model.CategoryJournal, 3),
		},
		Definition{
			ID:          "neurobot-friend",
			Name:        "NeuroBot Friend",
			Description: "Had 5+ conversations",
			Icon:        "🤖",
			Predicate: func(s aggregate.Snapshot) bool {
				return s.UserChatTurns >= 5
			},
		},
		Definition{
			ID:          "energy-champ",
			Name:        "Energy Champ",
			Description: "Completed 5 energy activities",
			Icon:        "⚡",
			Predicate:   AtLeast(model.CategoryActivity, 5),
		},
		Definition{
			ID:          "streak",
			Name:        "3-Day Streak",
			Description: "Used NeuroNest for 3+ days",
			Icon:        "🔥",
			Predicate: func(s aggregate.Snapshot) bool {
				return aggregate.StreakLength(s.Days) >= 3
			},
		},
		Definition{
			ID:          "explorer",
			Name:        "Explorer",
			Description: "Tried every tool in the toolkit",
			Icon:        "🧭",
			Predicate:   usedEveryTool,
		},
	)
}

func usedEveryTool(s aggregate.Snapshot) bool {
	for t := range model.ValidTools {
		if s.Tools.Get(t) == 0 {
			return false
		}
	}
	return true
}
