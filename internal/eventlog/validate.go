package eventlog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/rcliao/neuronest/internal/model"
)

// ErrValidation is wrapped by every ValidationError.
var ErrValidation = errors.New("invalid event")

// ValidationError reports a missing or malformed payload field.
type ValidationError struct {
	Category model.Category
	Field    string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s event: %s %s", e.Category, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(c model.Category, field, reason string) error {
	return &ValidationError{Category: c, Field: field, Reason: reason}
}

// Validate checks that ev carries exactly the payload its category declares
// and that the payload's fields are well formed.
func Validate(ev model.Event) error {
	c := ev.Category
	set := 0
	for _, present := range []bool{ev.Mood != nil, ev.Tool != nil, ev.Journal != nil, ev.Chat != nil, ev.Activity != nil} {
		if present {
			set++
		}
	}

	switch c {
	case model.CategoryMood:
		if ev.Mood == nil {
			return invalid(c, "mood", "is required")
		}
		if !model.ValidMoods[ev.Mood.Mood] {
			return invalid(c, "mood", fmt.Sprintf("%q is not a known mood", ev.Mood.Mood))
		}
	case model.CategoryTool:
		if ev.Tool == nil {
			return invalid(c, "tool", "is required")
		}
		if !model.ValidTools[ev.Tool.Tool] {
			return invalid(c, "tool", fmt.Sprintf("%q is not a known tool", ev.Tool.Tool))
		}
	case model.CategoryJournal:
		if ev.Journal == nil {
			return invalid(c, "journal", "is required")
		}
		if strings.TrimSpace(ev.Journal.Text) == "" {
			return invalid(c, "text", "is empty")
		}
		if strings.TrimSpace(ev.Journal.GeneratedResponse) == "" {
			return invalid(c, "generated_response", "is empty")
		}
	case model.CategoryChat:
		if ev.Chat == nil {
			return invalid(c, "chat", "is required")
		}
		if !model.ValidRoles[ev.Chat.Role] {
			return invalid(c, "role", fmt.Sprintf("%q is not user or bot", ev.Chat.Role))
		}
		if strings.TrimSpace(ev.Chat.Text) == "" {
			return invalid(c, "text", "is empty")
		}
	case model.CategoryActivity:
		if ev.Activity == nil {
			return invalid(c, "activity", "is required")
		}
		if strings.TrimSpace(ev.Activity.ActivityID) == "" {
			return invalid(c, "activity_id", "is empty")
		}
		if ev.Activity.Mood != "" && !model.ValidMoods[ev.Activity.Mood] {
			return invalid(c, "mood", fmt.Sprintf("%q is not a known mood", ev.Activity.Mood))
		}
	default:
		return invalid(c, "category", "is unknown")
	}

	if set != 1 {
		return invalid(c, "payload", "must be the only payload set")
	}
	// Ids embed the timestamp, so it must fit in a ULID.
	if ev.OccurredAt.After(ulid.Time(ulid.MaxTime())) {
		return invalid(c, "occurred_at", "is out of range")
	}
	return nil
}
