package domain

import "time"

// Journey is a named, persisted snapshot of a session. Payload is an opaque
// JSON serialization of the session state at save time; the store never
// interprets it.
type Journey struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	SavedAt time.Time `json:"saved_at"`
	Payload string    `json:"-"`
}

// JourneyListItem is the recency-ordered listing entry, without the payload.
type JourneyListItem struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	SavedAt time.Time `json:"saved_at"`
}
