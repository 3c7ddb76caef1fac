// Package model defines the core engagement data types.
package model

import "time"

// Category identifies which per-category log an event belongs to.
type Category string

const (
	CategoryMood     Category = "mood"
	CategoryTool     Category = "tool"
	CategoryJournal  Category = "journal"
	CategoryChat     Category = "chat"
	CategoryActivity Category = "activity"
)

// Categories lists every category in a stable order.
var Categories = []Category{
	CategoryMood,
	CategoryTool,
	CategoryJournal,
	CategoryChat,
	CategoryActivity,
}

// Event is one immutable record of a user action.
type Event struct {
	ID         string    `json:"id"`
	Seq        int64     `json:"seq"`
	Category   Category  `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`

	Mood     *MoodPayload     `json:"mood,omitempty"`
	Tool     *ToolPayload     `json:"tool,omitempty"`
	Journal  *JournalPayload  `json:"journal,omitempty"`
	Chat     *ChatPayload     `json:"chat,omitempty"`
	Activity *ActivityPayload `json:"activity,omitempty"`
}

// MoodPayload records a mood check-in.
type MoodPayload struct {
	Mood string `json:"mood"`
}

// ToolPayload records a tool being opened.
type ToolPayload struct {
	Tool string `json:"tool"`
}

// JournalPayload records a dump zone entry and the reply shown for it.
type JournalPayload struct {
	Text              string `json:"text"`
	GeneratedResponse string `json:"generated_response"`
}

// ChatPayload records a single chat turn.
type ChatPayload struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ActivityPayload records a completed energy activity.
type ActivityPayload struct {
	ActivityID string `json:"activity_id"`
	Mood       string `json:"mood,omitempty"`
}

// Chat roles.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// ValidMoods are the allowed mood values.
var ValidMoods = map[string]bool{
	"happy":   true,
	"sad":     true,
	"anxious": true,
	"excited": true,
	"angry":   true,
	"tired":   true,
}

// ValidTools are the allowed tool identifiers.
var ValidTools = map[string]bool{
	"breathe":  true,
	"sounds":   true,
	"dump":     true,
	"distract": true,
	"neurobot": true,
}

// ValidRoles are the allowed chat roles.
var ValidRoles = map[string]bool{
	RoleUser: true,
	RoleBot:  true,
}

// NewMood builds a mood event.
func NewMood(mood string) Event {
	return Event{Category: CategoryMood, Mood: &MoodPayload{Mood: mood}}
}

// NewToolUsage builds a tool usage event.
func NewToolUsage(tool string) Event {
	return Event{Category: CategoryTool, Tool: &ToolPayload{Tool: tool}}
}

// NewJournal builds a journal event.
func NewJournal(text, response string) Event {
	return Event{Category: CategoryJournal, Journal: &JournalPayload{Text: text, GeneratedResponse: response}}
}

// NewChat builds a chat turn event.
func NewChat(role, text string) Event {
	return Event{Category: CategoryChat, Chat: &ChatPayload{Role: role, Text: text}}
}

// NewActivity builds an activity completion event.
func NewActivity(activityID, mood string) Event {
	return Event{Category: CategoryActivity, Activity: &ActivityPayload{ActivityID: activityID, Mood: mood}}
}
