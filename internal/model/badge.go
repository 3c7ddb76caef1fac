package model

import "time"

// BadgeState is the lifecycle position of a single badge.
type BadgeState string

const (
	BadgeLocked         BadgeState = "locked"
	BadgeUnlockedUnseen BadgeState = "unlocked-unseen"
	BadgeUnlockedSeen   BadgeState = "unlocked-seen"
)

// BadgeNotice is a badge waiting to be shown to the user.
type BadgeNotice struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// BadgeStatus is a catalog entry joined with its current state.
type BadgeStatus struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	State       BadgeState `json:"state"`
}
