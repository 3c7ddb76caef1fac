// Package aggregate derives statistics from an event sequence. Every function
// is pure: the result depends only on its arguments.
package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/rcliao/neuronest/internal/model"
)

// Counts maps keys to occurrence counts and remembers the order in which keys
// first appeared.
type Counts struct {
	byKey map[string]int
	order []string
}

// KeyCount is a single entry of Counts.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Get returns the count for key.
func (c Counts) Get(key string) int {
	return c.byKey[key]
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c.byKey {
		total += n
	}
	return total
}

// Len returns the number of distinct keys.
func (c Counts) Len() int {
	return len(c.order)
}

// Entries returns the counts in first-appearance order.
func (c Counts) Entries() []KeyCount {
	out := make([]KeyCount, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, KeyCount{Key: k, Count: c.byKey[k]})
	}
	return out
}

// Map returns a copy of the counts keyed by name.
func (c Counts) Map() map[string]int {
	out := make(map[string]int, len(c.byKey))
	for k, v := range c.byKey {
		out[k] = v
	}
	return out
}

// CountBy counts events by the key keyFn returns. Events for which keyFn
// reports false are skipped.
func CountBy(events []model.Event, keyFn func(model.Event) (string, bool)) Counts {
	c := Counts{byKey: map[string]int{}}
	for _, ev := range events {
		k, ok := keyFn(ev)
		if !ok {
			continue
		}
		if _, seen := c.byKey[k]; !seen {
			c.order = append(c.order, k)
		}
		c.byKey[k]++
	}
	return c
}

// DaySet is a set of calendar days formatted as YYYY-MM-DD.
type DaySet map[string]struct{}

const dayLayout = "2006-01-02"

// Sorted returns the days in ascending order.
func (d DaySet) Sorted() []string {
	out := make([]string, 0, len(d))
	for day := range d {
		out = append(out, day)
	}
	sort.Strings(out)
	return out
}

// Has reports whether day (YYYY-MM-DD) is in the set.
func (d DaySet) Has(day string) bool {
	_, ok := d[day]
	return ok
}

// DistinctDays returns the local calendar days on which events occurred.
// Two events minutes apart on either side of midnight are two days.
func DistinctDays(events []model.Event, loc *time.Location) DaySet {
	if loc == nil {
		loc = time.Local
	}
	days := DaySet{}
	for _, ev := range events {
		days[ev.OccurredAt.In(loc).Format(dayLayout)] = struct{}{}
	}
	return days
}

// StreakLength is the number of distinct active days. Days need not be
// consecutive.
func StreakLength(days DaySet) int {
	return len(days)
}

// LongestRun returns the longest run of consecutive calendar days.
func LongestRun(days DaySet) int {
	sorted := days.Sorted()
	best, run := 0, 0
	var prev time.Time
	for i, day := range sorted {
		d, err := time.Parse(dayLayout, day)
		if err != nil {
			continue
		}
		if i > 0 && d.Equal(prev.AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = d
	}
	return best
}

// Window selects a time range relative to now.
type Window string

const (
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowAll   Window = "all"
)

// ParseWindow validates a window name. Empty means all.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowWeek, WindowMonth, WindowAll:
		return Window(s), nil
	case "":
		return WindowAll, nil
	}
	return "", fmt.Errorf("unknown window %q (valid: week, month, all)", s)
}

// Since returns the inclusive lower bound of the window and whether the
// window is bounded at all.
func (w Window) Since(now time.Time) (time.Time, bool) {
	switch w {
	case WindowWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case WindowMonth:
		return now.AddDate(0, -1, 0), true
	}
	return time.Time{}, false
}

// FilterByWindow returns the events whose timestamp is at or after the
// window's lower bound, preserving order.
func FilterByWindow(events []model.Event, w Window, now time.Time) []model.Event {
	since, bounded := w.Since(now)
	if !bounded {
		return events
	}
	var out []model.Event
	for _, ev := range events {
		if !ev.OccurredAt.Before(since) {
			out = append(out, ev)
		}
	}
	return out
}
