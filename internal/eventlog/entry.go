package eventlog

import (
	"encoding/json"
	"fmt"

	"github.com/rcliao/neuronest/internal/model"
)

// CategoryOfKey returns the category whose events are stored under key.
func CategoryOfKey(key string) (model.Category, bool) {
	for _, c := range model.Categories {
		if k, _ := CategoryKey(c); k == key {
			return c, true
		}
	}
	return "", false
}

// ValidateEntry checks a raw value about to be written under key. Values
// under a category key must be a list of valid events of that category.
// Other keys are not checked.
func ValidateEntry(key string, raw []byte) error {
	c, ok := CategoryOfKey(key)
	if !ok {
		return nil
	}
	var events []model.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return fmt.Errorf("%s: %w", key, invalid(c, "events", "is not an event list"))
	}
	for i, ev := range events {
		if ev.Category != c {
			return fmt.Errorf("%s[%d]: %w", key, i, invalid(ev.Category, "category", "does not belong under "+key))
		}
		if err := Validate(ev); err != nil {
			return fmt.Errorf("%s[%d]: %w", key, i, err)
		}
	}
	return nil
}
