// Package rotation picks the next item to show from a pool without repeating
// what was shown recently.
package rotation

import (
	"math/rand"
)

// Candidate is anything with a stable identifier. Selection compares ids,
// never values.
type Candidate interface {
	CandidateID() string
}

// Next draws uniformly from the pool entries that are neither exclude nor in
// history (oldest first). When every entry is excluded it reuses the oldest
// history id still in the pool, then falls back to any entry other than
// exclude. A single-entry pool always returns that entry.
//
// The pool must not be empty; Next panics like rand.Intn(0) does.
func Next[T Candidate](rng *rand.Rand, pool []T, history []string, exclude string) T {
	if len(pool) == 0 {
		panic("rotation: empty pool")
	}
	if len(pool) == 1 {
		return pool[0]
	}

	recent := make(map[string]bool, len(history)+1)
	for _, id := range history {
		recent[id] = true
	}
	if exclude != "" {
		recent[exclude] = true
	}

	eligible := make([]int, 0, len(pool))
	for i, c := range pool {
		if !recent[c.CandidateID()] {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) > 0 {
		return pool[eligible[rng.Intn(len(eligible))]]
	}

	// Every fresh candidate is used up: reuse the oldest shown one.
	for _, id := range history {
		if id == exclude {
			continue
		}
		for _, c := range pool {
			if c.CandidateID() == id {
				return c
			}
		}
	}

	others := make([]int, 0, len(pool))
	for i, c := range pool {
		if c.CandidateID() != exclude {
			others = append(others, i)
		}
	}
	if len(others) > 0 {
		return pool[others[rng.Intn(len(others))]]
	}
	return pool[rng.Intn(len(pool))]
}

// History is a bounded, oldest-first list of recently shown ids.
type History struct {
	Size int      `json:"size"`
	IDs  []string `json:"ids"`
}

// NewHistory returns an empty history holding at most size ids. Sizes below
// one are raised to one.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{Size: size}
}

// Push records id as the most recent selection, dropping the oldest entries
// beyond Size. A repeated id moves to the end.
func (h *History) Push(id string) {
	if h.Size < 1 {
		h.Size = 1
	}
	out := h.IDs[:0]
	for _, v := range h.IDs {
		if v != id {
			out = append(out, v)
		}
	}
	out = append(out, id)
	if len(out) > h.Size {
		out = out[len(out)-h.Size:]
	}
	h.IDs = out
}

// Last returns the most recent id, or "" when empty.
func (h *History) Last() string {
	if len(h.IDs) == 0 {
		return ""
	}
	return h.IDs[len(h.IDs)-1]
}
