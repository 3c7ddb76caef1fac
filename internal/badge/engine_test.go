package badge

import (
	"context"
	"testing"
	"time"

	"github.com/rcliao/neuronest/internal/aggregate"
	"github.com/rcliao/neuronest/internal/eventlog"
	"github.com/rcliao/neuronest/internal/model"
	"github.com/rcliao/neuronest/internal/store"
)

type harness struct {
	t      *testing.T
	store  *store.MemStore
	events *eventlog.Log
	engine *Engine
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	s := store.NewMemStore()
	return &harness{
		t:      t,
		store:  s,
		events: eventlog.New(s),
		engine: NewEngine(s, DefaultCatalog()),
	}
}

// record appends ev at the given time and evaluates badges, returning the
// ids of newly unlocked badges.
func (h *harness) record(ev model.Event, at time.Time) []string {
	h.t.Helper()
	ctx := context.Background()
	ev.OccurredAt = at
	if _, err := h.events.Append(ctx, ev); err != nil {
		h.t.Fatalf("append: %v", err)
	}
	all, err := h.events.ListAll(ctx)
	if err != nil {
		h.t.Fatalf("list: %v", err)
	}
	fresh, err := h.engine.Evaluate(ctx, aggregate.Build(all, time.UTC))
	if err != nil {
		h.t.Fatalf("evaluate: %v", err)
	}
	var ids []string
	for _, d := range fresh {
		ids = append(ids, d.ID)
	}
	return ids
}

func (h *harness) unlocked() []string {
	h.t.Helper()
	ids, err := h.engine.Unlocked(context.Background())
	if err != nil {
		h.t.Fatalf("unlocked: %v", err)
	}
	return ids
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func day(d, hour int) time.Time {
	return time.Date(2024, 1, d, hour, 0, 0, 0, time.UTC)
}

func TestStreakBadgeNeedsThreeDistinctDays(t *testing.T) {
	h := newHarness(t)

	h.record(model.NewMood("happy"), day(1, 9))
	h.record(model.NewMood("sad"), day(1, 20))
	if got := h.record(model.NewMood("tired"), day(3, 9)); contains(got, "streak") {
		t.Fatal("streak unlocked with only 2 distinct days")
	}
	if contains(h.unlocked(), "streak") {
		t.Fatal("streak present in unlocked set with only 2 distinct days")
	}

	got := h.record(model.NewMood("happy"), day(5, 9))
	if !contains(got, "streak") {
		t.Errorf("expected streak to unlock on the third distinct day, got %v", got)
	}
}

func TestGrantIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	var unlockedAt int
	for i := 0; i < 9; i++ {
		got := h.record(model.NewMood("happy"), day(1, i))
		if contains(got, "mood-tracker") {
			if unlockedAt != 0 {
				t.Fatalf("mood-tracker granted twice (events %d and %d)", unlockedAt, i+1)
			}
			unlockedAt = i + 1
		}
	}
	if unlockedAt != 5 {
		t.Errorf("expected mood-tracker on the 5th mood, got %d", unlockedAt)
	}

	ids := h.unlocked()
	n := 0
	for _, id := range ids {
		if id == "mood-tracker" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("expected mood-tracker once in unlocked set, got %d", n)
	}

	queue, _ := h.engine.Unseen(ctx)
	if len(queue) != 1 || queue[0].ID != "mood-tracker" {
		t.Errorf("expected a single queued notice, got %+v", queue)
	}

	// Acknowledging then continuing must not re-queue it.
	h.engine.Acknowledge(ctx)
	h.record(model.NewMood("sad"), day(1, 10))
	queue, _ = h.engine.Unseen(ctx)
	if len(queue) != 0 {
		t.Errorf("expected empty queue after acknowledge, got %+v", queue)
	}
}

func TestUnlockSetIsMonotonic(t *testing.T) {
	h := newHarness(t)

	sequence := []model.Event{
		model.NewMood("happy"),
		model.NewJournal("a", "b"),
		model.NewChat(model.RoleUser, "hi"),
		model.NewJournal("a", "b"),
		model.NewToolUsage("breathe"),
		model.NewJournal("a", "b"),
		model.NewActivity("dance-party", "happy"),
		model.NewChat(model.RoleUser, "hi"),
		model.NewMood("sad"),
	}
	var prev []string
	for i, ev := range sequence {
		h.record(ev, day(1+i, 12))
		cur := h.unlocked()
		for _, id := range prev {
			if !contains(cur, id) {
				t.Fatalf("step %d: badge %s disappeared from %v", i, id, cur)
			}
		}
		if len(cur) < len(prev) {
			t.Fatalf("step %d: unlocked set shrank", i)
		}
		prev = cur
	}
	if !contains(prev, "journaling-star") || !contains(prev, "streak") {
		t.Errorf("expected journaling-star and streak, got %v", prev)
	}
}

func TestMultipleBadgesFromOneEvent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		h.record(model.NewMood("happy"), day(1+i%2, i))
	}
	// Fifth mood on a third day unlocks both mood-tracker and streak.
	got := h.record(model.NewMood("excited"), day(7, 8))
	if len(got) != 2 || got[0] != "mood-tracker" || got[1] != "streak" {
		t.Fatalf("expected [mood-tracker streak], got %v", got)
	}

	queue, _ := h.engine.Unseen(ctx)
	if len(queue) != 2 {
		t.Fatalf("expected both badges queued, got %d", len(queue))
	}
	if queue[0].Name != "Mood Tracker" || queue[0].Icon == "" {
		t.Errorf("unexpected first notice %+v", queue[0])
	}
}

func TestChatAndActivityBadges(t *testing.T) {
	h := newHarness(t)

	for i := 0; i < 5; i++ {
		h.record(model.NewChat(model.RoleBot, "hello"), day(1, i))
	}
	if contains(h.unlocked(), "neurobot-friend") {
		t.Fatal("bot turns must not count toward neurobot-friend")
	}
	for i := 0; i < 5; i++ {
		h.record(model.NewChat(model.RoleUser, "hey"), day(1, 6+i))
	}
	if !contains(h.unlocked(), "neurobot-friend") {
		t.Error("expected neurobot-friend after 5 user turns")
	}

	for i := 0; i < 4; i++ {
		h.record(model.NewActivity("water-break", ""), day(1, 12+i))
	}
	if contains(h.unlocked(), "energy-champ") {
		t.Fatal("energy-champ unlocked early")
	}
	if got := h.record(model.NewActivity("cool-down", "angry"), day(1, 17)); !contains(got, "energy-champ") {
		t.Errorf("expected energy-champ on 5th activity, got %v", got)
	}
}

func TestExplorerNeedsEveryTool(t *testing.T) {
	h := newHarness(t)
	tools := []string{"breathe", "sounds", "dump", "distract"}
	for i, tool := range tools {
		h.record(model.NewToolUsage(tool), day(1, i))
	}
	if contains(h.unlocked(), "explorer") {
		t.Fatal("explorer unlocked before neurobot was used")
	}
	if got := h.record(model.NewToolUsage("neurobot"), day(1, 8)); !contains(got, "explorer") {
		t.Errorf("expected explorer, got %v", got)
	}
}

func TestStateTransitions(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	st, _ := h.engine.State(ctx, "journaling-star")
	if st != model.BadgeLocked {
		t.Fatalf("expected locked, got %s", st)
	}

	for i := 0; i < 3; i++ {
		h.record(model.NewJournal("thoughts", "reply"), day(1, i))
	}
	st, _ = h.engine.State(ctx, "journaling-star")
	if st != model.BadgeUnlockedUnseen {
		t.Fatalf("expected unlocked-unseen, got %s", st)
	}

	acked, err := h.engine.Acknowledge(ctx, "journaling-star", "not-a-badge")
	if err != nil {
		t.Fatalf("acknowledge: %v", err)
	}
	if len(acked) != 1 {
		t.Errorf("expected 1 acknowledged, got %d", len(acked))
	}
	st, _ = h.engine.State(ctx, "journaling-star")
	if st != model.BadgeUnlockedSeen {
		t.Fatalf("expected unlocked-seen, got %s", st)
	}

	// Predicate still true: no backward move, no re-queue.
	h.record(model.NewJournal("more", "reply"), day(1, 5))
	st, _ = h.engine.State(ctx, "journaling-star")
	if st != model.BadgeUnlockedSeen {
		t.Errorf("expected to stay unlocked-seen, got %s", st)
	}

	list, _ := h.engine.List(ctx)
	if len(list) != len(DefaultCatalog().Definitions()) {
		t.Fatalf("expected full catalog, got %d", len(list))
	}
	for _, b := range list {
		if b.ID == "mood-tracker" && b.State != model.BadgeLocked {
			t.Errorf("expected mood-tracker locked, got %s", b.State)
		}
	}
}

func TestQueuedNoticeProtectsAgainstLostUnlockedSet(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		h.record(model.NewJournal("x", "y"), day(1, i))
	}
	h.store.Set(ctx, KeyUnlocked, []byte(`{corrupt`))

	if got := h.record(model.NewJournal("x", "y"), day(1, 9)); contains(got, "journaling-star") {
		t.Error("journaling-star re-granted after unlocked set was corrupted")
	}
	queue, _ := h.engine.Unseen(ctx)
	if len(queue) != 1 {
		t.Errorf("expected one queued notice, got %d", len(queue))
	}
}

func TestCorruptRecordsReadAsEmpty(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.store.Set(ctx, KeyUnlocked, []byte(`nope`))
	h.store.Set(ctx, KeyUnseen, []byte(`nope`))

	ids, err := h.engine.Unlocked(ctx)
	if err != nil || len(ids) != 0 {
		t.Errorf("expected empty unlocked set, got %v (%v)", ids, err)
	}
	queue, err := h.engine.Unseen(ctx)
	if err != nil || len(queue) != 0 {
		t.Errorf("expected empty queue, got %v (%v)", queue, err)
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	always := func(aggregate.Snapshot) bool { return true }
	_, err := NewCatalog(
		Definition{ID: "a", Predicate: always},
		Definition{ID: "a", Predicate: always},
	)
	if err == nil {
		t.Error("expected duplicate id error")
	}
	if _, err := NewCatalog(Definition{ID: "b"}); err == nil {
		t.Error("expected nil predicate error")
	}
	if _, err := NewCatalog(Definition{Name: "nameless", Predicate: always}); err == nil {
		t.Error("expected empty id error")
	}
}
