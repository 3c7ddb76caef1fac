package aggregate

import (
	"time"

	"github.com/rcliao/neuronest/internal/model"
)

// Snapshot is the derived view of an event sequence that badge predicates
// and stats read from.
type Snapshot struct {
	Categories    Counts
	Moods         Counts
	Tools         Counts
	Activities    Counts
	UserChatTurns int
	BotChatTurns  int
	Days          DaySet

	events []model.Event
	loc    *time.Location
}

// Build computes a snapshot of events using loc for calendar days.
func Build(events []model.Event, loc *time.Location) Snapshot {
	if loc == nil {
		loc = time.Local
	}
	s := Snapshot{
		Categories: CountBy(events, func(ev model.Event) (string, bool) {
			return string(ev.Category), true
		}),
		Moods: CountBy(events, func(ev model.Event) (string, bool) {
			if ev.Mood == nil {
				return "", false
			}
			return ev.Mood.Mood, true
		}),
		Tools: CountBy(events, func(ev model.Event) (string, bool) {
			if ev.Tool == nil {
				return "", false
			}
			return ev.Tool.Tool, true
		}),
		Activities: CountBy(events, func(ev model.Event) (string, bool) {
			if ev.Activity == nil {
				return "", false
			}
			return ev.Activity.ActivityID, true
		}),
		Days:   DistinctDays(events, loc),
		events: events,
		loc:    loc,
	}
	for _, ev := range events {
		if ev.Chat == nil {
			continue
		}
		switch ev.Chat.Role {
		case model.RoleUser:
			s.UserChatTurns++
		case model.RoleBot:
			s.BotChatTurns++
		}
	}
	return s
}

// Count returns the number of events in category c.
func (s Snapshot) Count(c model.Category) int {
	return s.Categories.Get(string(c))
}

// Total returns the number of events in the snapshot.
func (s Snapshot) Total() int {
	return len(s.events)
}

// Window recomputes the snapshot over the events inside w.
func (s Snapshot) Window(w Window, now time.Time) Snapshot {
	return Build(FilterByWindow(s.events, w, now), s.loc)
}

// Summary is the JSON-friendly rendering of a snapshot.
type Summary struct {
	Window        Window     `json:"window"`
	Total         int        `json:"total"`
	Categories    []KeyCount `json:"categories"`
	Moods         []KeyCount `json:"moods"`
	Tools         []KeyCount `json:"tools"`
	Activities    []KeyCount `json:"activities"`
	UserChatTurns int        `json:"user_chat_turns"`
	BotChatTurns  int        `json:"bot_chat_turns"`
	ActiveDays    []string   `json:"active_days"`
	Streak        int        `json:"streak"`
	LongestRun    int        `json:"longest_run"`
}

// Summarize renders s for output.
func (s Snapshot) Summarize(w Window) Summary {
	return Summary{
		Window:        w,
		Total:         s.Total(),
		Categories:    s.Categories.Entries(),
		Moods:         s.Moods.Entries(),
		Tools:         s.Tools.Entries(),
		Activities:    s.Activities.Entries(),
		UserChatTurns: s.UserChatTurns,
		BotChatTurns:  s.BotChatTurns,
		ActiveDays:    s.Days.Sorted(),
		Streak:        StreakLength(s.Days),
		LongestRun:    LongestRun(s.Days),
	}
}
