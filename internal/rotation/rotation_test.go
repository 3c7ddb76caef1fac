package rotation

import (
	"context"
	"math/rand"
	"testing"

	"github.com/rcliao/neuronest/internal/store"
)

type item struct {
	id    string
	label string
}

func (i item) CandidateID() string { return i.id }

func pool(ids ...string) []item {
	out := make([]item, len(ids))
	for i, id := range ids {
		out[i] = item{id: id, label: "same"}
	}
	return out
}

func TestNextNeverRepeatsPrevious(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := pool("a", "b", "c")

	seen := map[string]int{}
	for i := 0; i < 100; i++ {
		got := Next(rng, p, []string{"a"}, "")
		if got.id == "a" {
			t.Fatalf("draw %d returned the most recently shown candidate", i)
		}
		seen[got.id]++
	}
	if seen["b"] == 0 || seen["c"] == 0 {
		t.Errorf("expected both fresh candidates to appear, got %v", seen)
	}
}

func TestNextRespectsExclude(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	p := pool("a", "b")
	for i := 0; i < 50; i++ {
		if got := Next(rng, p, nil, "b"); got.id != "a" {
			t.Fatalf("expected a, got %s", got.id)
		}
	}
}

func TestNextComparesByID(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	// Structurally equal values with distinct ids are distinct candidates.
	p := []item{{id: "x", label: "twin"}, {id: "y", label: "twin"}}
	for i := 0; i < 20; i++ {
		if got := Next(rng, p, nil, "x"); got.id != "y" {
			t.Fatalf("expected y, got %s", got.id)
		}
	}
}

func TestNextSingleCandidate(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	p := pool("only")
	if got := Next(rng, p, []string{"only"}, "only"); got.id != "only" {
		t.Errorf("expected only, got %s", got.id)
	}
}

func TestNextReusesOldestWhenExhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p := pool("a", "b", "c")
	// All shown; c most recent, a oldest.
	for i := 0; i < 20; i++ {
		if got := Next(rng, p, []string{"a", "b", "c"}, "c"); got.id != "a" {
			t.Fatalf("expected oldest a, got %s", got.id)
		}
	}
}

func TestNextIgnoresHistoryOutsidePool(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	p := pool("a", "b")
	for i := 0; i < 20; i++ {
		got := Next(rng, p, []string{"zz", "a", "b"}, "b")
		if got.id != "a" {
			t.Fatalf("expected a, got %s", got.id)
		}
	}
}

func TestNextEmptyPoolPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty pool")
		}
	}()
	Next(rand.New(rand.NewSource(7)), []item{}, nil, "")
}

func TestHistoryBounded(t *testing.T) {
	h := NewHistory(0)
	if h.Size != 1 {
		t.Fatalf("expected size clamped to 1, got %d", h.Size)
	}

	h = NewHistory(3)
	for _, id := range []string{"a", "b", "c", "d", "b"} {
		h.Push(id)
	}
	want := []string{"c", "d", "b"}
	if len(h.IDs) != len(want) {
		t.Fatalf("expected %v, got %v", want, h.IDs)
	}
	for i := range want {
		if h.IDs[i] != want[i] {
			t.Errorf("expected %v, got %v", want, h.IDs)
			break
		}
	}
	if h.Last() != "b" {
		t.Errorf("expected last b, got %s", h.Last())
	}
}

func TestPickPersistsHistory(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemStore()
	r := NewRotator(s, rand.New(rand.NewSource(8)), map[string]int{"p": 2}, nil)
	p := pool("a", "b", "c", "d")

	prev := ""
	for i := 0; i < 50; i++ {
		got, err := Pick(ctx, r, "p", p)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		if got.id == prev {
			t.Fatalf("pick %d repeated %s", i, prev)
		}
		prev = got.id
	}

	h, err := r.History(ctx, "p")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(h.IDs) != 2 || h.Last() != prev {
		t.Errorf("expected persisted history ending in %s, got %v", prev, h.IDs)
	}

	// A new rotator over the same store continues the same history.
	r2 := NewRotator(s, rand.New(rand.NewSource(9)), map[string]int{"p": 2}, nil)
	got, _ := Pick(ctx, r2, "p", p)
	if got.id == prev {
		t.Errorf("history was not carried over: repeated %s", prev)
	}
}

func TestPickCorruptHistory(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemStore()
	s.Set(ctx, HistoryKey("p"), []byte(`{bad`))
	r := NewRotator(s, rand.New(rand.NewSource(10)), nil, nil)

	if _, err := Pick(ctx, r, "p", pool("a", "b")); err != nil {
		t.Fatalf("expected corrupt history to be ignored, got %v", err)
	}
	h, _ := r.History(ctx, "p")
	if len(h.IDs) != 1 {
		t.Errorf("expected fresh history of 1, got %v", h.IDs)
	}
}
