package eventlog

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/rcliao/neuronest/internal/model"
	"github.com/rcliao/neuronest/internal/store"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAppendAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	l := New(store.NewMemStore(), WithClock(fixedClock(now)))

	ev, err := l.Append(ctx, model.NewMood("happy"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if ev.ID == "" {
		t.Error("expected non-empty ID")
	}
	if ev.Seq != 1 {
		t.Errorf("expected seq 1, got %d", ev.Seq)
	}
	if !ev.OccurredAt.Equal(now) {
		t.Errorf("expected clock time, got %v", ev.OccurredAt)
	}

	ev2, _ := l.Append(ctx, model.NewToolUsage("breathe"))
	if ev2.Seq != 2 {
		t.Errorf("expected seq 2, got %d", ev2.Seq)
	}
	if ev2.ID == ev.ID {
		t.Error("expected distinct IDs")
	}
}

func TestAppendKeepsExplicitTimestamp(t *testing.T) {
	l := New(store.NewMemStore())
	at := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	ev := model.NewMood("sad")
	ev.OccurredAt = at

	got, err := l.Append(context.Background(), ev)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if !got.OccurredAt.Equal(at) {
		t.Errorf("expected %v, got %v", at, got.OccurredAt)
	}
}

func TestAppendValidation(t *testing.T) {
	tests := []struct {
		name  string
		ev    model.Event
		field string
	}{
		{"unknown mood", model.NewMood("bored"), "mood"},
		{"missing mood payload", model.Event{Category: model.CategoryMood}, "mood"},
		{"unknown tool", model.NewToolUsage("hammer"), "tool"},
		{"blank journal text", model.NewJournal("  ", "ok"), "text"},
		{"missing journal response", model.NewJournal("hello", ""), "generated_response"},
		{"bad chat role", model.NewChat("system", "hi"), "role"},
		{"blank chat text", model.NewChat(model.RoleUser, ""), "text"},
		{"blank activity id", model.NewActivity("", ""), "activity_id"},
		{"bad activity mood", model.NewActivity("box-breathing", "meh"), "mood"},
		{"unknown category", model.Event{Category: "sleep"}, "category"},
		{"extra payload", model.Event{
			Category: model.CategoryMood,
			Mood:     &model.MoodPayload{Mood: "happy"},
			Tool:     &model.ToolPayload{Tool: "breathe"},
		}, "payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewMemStore()
			_, err := New(s).Append(context.Background(), tt.ev)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, verr.Field)
			}
			keys, _ := s.Keys(context.Background())
			if len(keys) != 0 {
				t.Errorf("expected nothing written, got keys %v", keys)
			}
		})
	}
}

func TestActivityWithoutMoodIsValid(t *testing.T) {
	if err := Validate(model.NewActivity("sunshine-moment", "")); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
}

func TestListAllInsertionOrder(t *testing.T) {
	ctx := context.Background()
	l := New(store.NewMemStore())

	// Timestamps deliberately run backwards; insertion order must win.
	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	inputs := []model.Event{
		model.NewChat(model.RoleUser, "hello"),
		model.NewMood("tired"),
		model.NewChat(model.RoleBot, "hi there"),
		model.NewActivity("eye-break", "tired"),
	}
	for i, ev := range inputs {
		ev.OccurredAt = base.Add(-time.Duration(i) * time.Hour)
		if _, err := l.Append(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := l.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 events, got %d", len(all))
	}
	want := []model.Category{model.CategoryChat, model.CategoryMood, model.CategoryChat, model.CategoryActivity}
	for i, ev := range all {
		if ev.Category != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], ev.Category)
		}
		if ev.Seq != int64(i+1) {
			t.Errorf("position %d: expected seq %d, got %d", i, i+1, ev.Seq)
		}
	}

	chats, _ := l.ListByCategory(ctx, model.CategoryChat)
	if len(chats) != 2 || chats[0].Chat.Text != "hello" || chats[1].Chat.Role != model.RoleBot {
		t.Errorf("unexpected chat log %+v", chats)
	}
}

func TestCorruptCategoryReadsEmpty(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemStore()
	l := New(s)

	l.Append(ctx, model.NewMood("happy"))
	s.Set(ctx, KeyJournal, []byte(`{"oops"`))

	journal, err := l.ListByCategory(ctx, model.CategoryJournal)
	if err != nil {
		t.Fatalf("expected corrupt data to read as empty, got %v", err)
	}
	if len(journal) != 0 {
		t.Errorf("expected empty journal, got %d", len(journal))
	}

	all, err := l.ListAll(ctx)
	if err != nil || len(all) != 1 {
		t.Errorf("expected the mood event to survive, got %d (%v)", len(all), err)
	}

	// Appending over a corrupt log starts it fresh.
	if _, err := l.Append(ctx, model.NewJournal("rough day", "I hear you.")); err != nil {
		t.Fatalf("append: %v", err)
	}
	journal, _ = l.ListByCategory(ctx, model.CategoryJournal)
	if len(journal) != 1 {
		t.Errorf("expected 1 journal entry, got %d", len(journal))
	}
}

func TestCorruptSequenceIsRebuilt(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemStore()
	l := New(s)

	l.Append(ctx, model.NewMood("happy"))
	l.Append(ctx, model.NewMood("sad"))
	s.Set(ctx, KeySeq, []byte(`"garbage"`))

	ev, err := l.Append(ctx, model.NewMood("angry"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if ev.Seq != 3 {
		t.Errorf("expected rebuilt seq 3, got %d", ev.Seq)
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.db")
	s, err := store.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	l := New(s, WithClock(fixedClock(time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC))))
	l.Append(ctx, model.NewMood("excited"))
	l.Append(ctx, model.NewJournal("so much to do", "One step at a time."))
	l.Append(ctx, model.NewChat(model.RoleUser, "what is 2 + 2"))
	l.Append(ctx, model.NewActivity("idea-blast", "excited"))
	l.Append(ctx, model.NewToolUsage("sounds"))

	before, err := l.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	s.Close()

	reopened, err := store.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	// Move the persisted form into a fresh store and read it back.
	dump, err := store.ExportAll(ctx, reopened, "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	mem := store.NewMemStore()
	if _, err := store.Import(ctx, mem, dump); err != nil {
		t.Fatalf("import: %v", err)
	}

	after, err := New(mem).ListAll(ctx)
	if err != nil {
		t.Fatalf("list after reload: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("expected %d events, got %d", len(before), len(after))
	}
	for i := range before {
		b, a := before[i], after[i]
		if a.ID != b.ID || a.Seq != b.Seq || a.Category != b.Category || !a.OccurredAt.Equal(b.OccurredAt) {
			t.Errorf("event %d header differs: %+v vs %+v", i, b, a)
		}
		if !reflect.DeepEqual(a.Mood, b.Mood) || !reflect.DeepEqual(a.Tool, b.Tool) ||
			!reflect.DeepEqual(a.Journal, b.Journal) || !reflect.DeepEqual(a.Chat, b.Chat) ||
			!reflect.DeepEqual(a.Activity, b.Activity) {
			t.Errorf("event %d payload differs", i)
		}
	}
}

func TestWithSharesConfiguration(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemStore()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	l := New(s, WithClock(fixedClock(now)))

	err := s.Update(ctx, func(kv store.KV) error {
		ev, err := l.With(kv).Append(ctx, model.NewMood("happy"))
		if err != nil {
			return err
		}
		if !ev.OccurredAt.Equal(now) {
			t.Errorf("expected shared clock, got %v", ev.OccurredAt)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	moods, _ := l.ListByCategory(ctx, model.CategoryMood)
	if len(moods) != 1 {
		t.Errorf("expected committed event, got %d", len(moods))
	}
}

func TestAppendRejectsOutOfRangeTimestamp(t *testing.T) {
	l := New(store.NewMemStore())
	ev := model.NewMood("happy")
	ev.OccurredAt = time.Date(20000, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := l.Append(context.Background(), ev)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "occurred_at" {
		t.Fatalf("expected occurred_at validation error, got %v", err)
	}
	all, _ := l.ListAll(context.Background())
	if len(all) != 0 {
		t.Errorf("expected nothing stored, got %d events", len(all))
	}
}

func TestListByCategoryUnknown(t *testing.T) {
	l := New(store.NewMemStore())
	_, err := l.ListByCategory(context.Background(), "moods")
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
	if errors.Is(err, ErrValidation) {
		t.Errorf("expected a lookup error, got validation error %v", err)
	}
}

func TestValidateEntry(t *testing.T) {
	encode := func(evs ...model.Event) []byte {
		b, err := json.Marshal(evs)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return b
	}

	tests := []struct {
		name    string
		key     string
		raw     []byte
		wantErr bool
	}{
		{"valid moods", KeyMood, encode(model.NewMood("happy"), model.NewMood("sad")), false},
		{"empty list", KeyMood, []byte(`[]`), false},
		{"unknown mood", KeyMood, encode(model.NewMood("bogus")), true},
		{"blank mood", KeyMood, encode(model.NewMood("")), true},
		{"tool under mood key", KeyMood, encode(model.NewToolUsage("breathe")), true},
		{"mood with tool payload", KeyMood, encode(model.Event{Category: model.CategoryMood, Tool: &model.ToolPayload{Tool: "breathe"}}), true},
		{"chat under mood key", KeyMood, encode(model.NewChat(model.RoleUser, "hi")), true},
		{"not a list", KeyChat, []byte(`{"role":"user"}`), true},
		{"other key unchecked", "lastMood", []byte(`"whatever"`), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(tt.key, tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}
