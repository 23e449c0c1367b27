// Package store defines the journey persistence interface and its
// implementations.
package store

import (
	"context"

	"github.com/brandloom/brandloom/internal/domain"
)

// Store is the durable journey snapshot gateway. Payloads are opaque
// serialized session state; the store never interprets them.
type Store interface {
	// CreateJourney stores a new snapshot and returns its id.
	CreateJourney(ctx context.Context, name, payload string) (string, error)

	// UpdateJourney overwrites an existing snapshot in place.
	UpdateJourney(ctx context.Context, id, name, payload string) error

	// GetJourney returns the snapshot, or nil when the id is unknown.
	GetJourney(ctx context.Context, id string) (*domain.Journey, error)

	// ListJourneys returns all snapshots ordered by savedAt descending.
	ListJourneys(ctx context.Context) ([]domain.JourneyListItem, error)

	// Lifecycle
	Close() error
}
