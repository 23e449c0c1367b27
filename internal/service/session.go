package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brandloom/brandloom/internal/domain"
)

// Session is the sole owner of one live working set. Every mutation happens
// under its mutex through named entry points; consumers read snapshots.
type Session struct {
	ID string

	mu    sync.Mutex
	state domain.SessionState
	// seq holds a monotonically increasing invocation number per tool. A
	// completion only applies its result if no newer invocation of the
	// same tool has started since, so a slot always reflects the most
	// recently started invocation regardless of completion order.
	seq map[domain.Tool]uint64
}

// CreateSession registers a fresh session and returns it.
func (s *Service) CreateSession() *Session {
	sess := &Session{
		ID:  "s_" + uuid.New().String(),
		seq: make(map[domain.Tool]uint64),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Session looks up a registered session.
func (s *Service) Session(id string) (*Session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	return sess, nil
}

// Snapshot returns a copy of the session state safe to hand to readers.
// Artifact pointers are shared but never mutated in place; the error slice
// is copied so later appends cannot race a reader.
func (sess *Session) Snapshot() domain.SessionState {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshotLocked()
}

func (sess *Session) snapshotLocked() domain.SessionState {
	state := sess.state
	state.Errors = append([]domain.AppError(nil), sess.state.Errors...)
	if sess.state.CurrentJourney != nil {
		ref := *sess.state.CurrentJourney
		state.CurrentJourney = &ref
	}
	return state
}

// SetBrandFacts replaces the brand facts. Existing artifacts are left in
// place; staleness after a facts edit is the user's to notice.
func (sess *Session) SetBrandFacts(brandDetails, targetDemographic, industry string) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.state.BrandDetails = brandDetails
	sess.state.TargetDemographic = targetDemographic
	sess.state.Industry = industry
}

// AddError appends a timestamped entry to the error log.
func (sess *Session) AddError(message string) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.appendErrorLocked(message)
}

func (sess *Session) appendErrorLocked(message string) {
	sess.state.Errors = append(sess.state.Errors, domain.AppError{
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// ClearErrors empties the error log.
func (sess *Session) ClearErrors() {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.state.Errors = nil
}
