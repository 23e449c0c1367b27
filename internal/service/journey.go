package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brandloom/brandloom/internal/domain"
)

// marshalPayload serializes the session state for persistence. The error
// log is session-local and deliberately excluded from the snapshot, as is
// the journey reference, which identifies the document itself.
func (sess *Session) marshalPayload() (string, error) {
	sess.mu.Lock()
	state := sess.snapshotLocked()
	sess.mu.Unlock()

	state.Errors = nil
	state.CurrentJourney = nil
	raw, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to serialize session state: %w", err)
	}
	return string(raw), nil
}

// SaveCurrentJourney persists the session under its active journey id,
// overwriting in place. With no active journey it behaves like
// SaveAsNewJourney.
func (s *Service) SaveCurrentJourney(ctx context.Context, sessionID, name string) (*domain.JourneyRef, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	current := sess.state.CurrentJourney
	sess.mu.Unlock()
	if current == nil {
		return s.SaveAsNewJourney(ctx, sessionID, name)
	}

	payload, err := sess.marshalPayload()
	if err != nil {
		sess.AddError(fmt.Sprintf("failed to save journey: %v", err))
		return nil, err
	}
	if err := s.store.UpdateJourney(ctx, current.ID, name, payload); err != nil {
		sess.AddError(fmt.Sprintf("failed to save journey: %v", err))
		return nil, err
	}

	ref := domain.JourneyRef{ID: current.ID, Name: name}
	sess.mu.Lock()
	sess.state.CurrentJourney = &ref
	sess.mu.Unlock()
	return &ref, nil
}

// SaveAsNewJourney always creates a fresh snapshot, even when the session
// already has an active journey: a sibling snapshot, not a branch.
func (s *Service) SaveAsNewJourney(ctx context.Context, sessionID, name string) (*domain.JourneyRef, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}

	payload, err := sess.marshalPayload()
	if err != nil {
		sess.AddError(fmt.Sprintf("failed to save journey: %v", err))
		return nil, err
	}
	id, err := s.store.CreateJourney(ctx, name, payload)
	if err != nil {
		sess.AddError(fmt.Sprintf("failed to save journey: %v", err))
		return nil, err
	}

	ref := domain.JourneyRef{ID: id, Name: name}
	sess.mu.Lock()
	sess.state.CurrentJourney = &ref
	sess.mu.Unlock()
	return &ref, nil
}

// LoadJourney wholesale-replaces the session's brand facts and artifacts
// with a persisted snapshot. The error log starts fresh, and all in-flight
// generation results are invalidated.
func (s *Service) LoadJourney(ctx context.Context, sessionID, journeyID string) error {
	sess, err := s.Session(sessionID)
	if err != nil {
		return err
	}

	journey, err := s.store.GetJourney(ctx, journeyID)
	if err != nil {
		sess.AddError(fmt.Sprintf("failed to load journey: %v", err))
		return err
	}
	if journey == nil {
		err := fmt.Errorf("journey %s not found", journeyID)
		sess.AddError(fmt.Sprintf("failed to load journey: %v", err))
		return err
	}

	var state domain.SessionState
	if err := json.Unmarshal([]byte(journey.Payload), &state); err != nil {
		err = fmt.Errorf("journey payload is corrupt: %w", err)
		sess.AddError(fmt.Sprintf("failed to load journey: %v", err))
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	state.Errors = nil
	state.CurrentJourney = &domain.JourneyRef{ID: journey.ID, Name: journey.Name}
	sess.state = state
	for _, tool := range domain.SlotTools {
		sess.seq[tool]++
	}
	return nil
}

// ListJourneys is a pass-through to the store; failures land in the
// session's error log.
func (s *Service) ListJourneys(ctx context.Context, sessionID string) ([]domain.JourneyListItem, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListJourneys(ctx)
	if err != nil {
		sess.AddError(fmt.Sprintf("failed to list journeys: %v", err))
		return nil, err
	}
	return items, nil
}
