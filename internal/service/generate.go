package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/brandloom/brandloom/internal/domain"
)

// generate clears the tool's slot synchronously, then runs the generation
// exchange in its own goroutine. apply writes the decoded output into the
// session under its lock. The returned channel closes once the invocation
// has resolved and its outcome (write, error log entry, or stale drop) has
// been applied.
func (s *Service) generate(ctx context.Context, sessionID string, tool domain.Tool, input any, apply func(sess *Session, raw json.RawMessage) error) (<-chan struct{}, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.seq[tool]++
	seq := sess.seq[tool]
	sess.state.Artifacts.Clear(tool)
	sess.mu.Unlock()

	// The exchange must outlive the triggering request.
	callCtx := context.WithoutCancel(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		raw, err := s.llm.Invoke(callCtx, tool, input)

		sess.mu.Lock()
		defer sess.mu.Unlock()
		if sess.seq[tool] != seq {
			log.Printf("dropping stale %s result for session %s", tool, sess.ID)
			return
		}
		if err != nil {
			sess.appendErrorLocked(fmt.Sprintf("%s generation failed: %v", tool, err))
			return
		}
		if err := apply(sess, raw); err != nil {
			sess.appendErrorLocked(fmt.Sprintf("%s generation returned malformed output: %v", tool, err))
		}
	}()
	return done, nil
}

// GenerateAudienceInsights runs the audience analysis tool. On success the
// submitted brand facts are written into the session alongside the report.
func (s *Service) GenerateAudienceInsights(ctx context.Context, sessionID string, in domain.AudienceInsightsInput) (<-chan struct{}, error) {
	return s.generate(ctx, sessionID, domain.ToolAudienceInsights, in, func(sess *Session, raw json.RawMessage) error {
		var out domain.AudienceInsightsOutput
		if err := json.Unmarshal(raw, &out); err != nil {
			return err
		}
		sess.state.BrandDetails = in.BrandDetails
		sess.state.TargetDemographic = in.TargetDemographic
		sess.state.Artifacts.AudienceInsights = &out
		return nil
	})
}

// GenerateStrategy runs the platform strategy tool.
func (s *Service) GenerateStrategy(ctx context.Context, sessionID string, in domain.StrategyInput) (<-chan struct{}, error) {
	return s.generate(ctx, sessionID, domain.ToolStrategy, in, func(sess *Session, raw json.RawMessage) error {
		var out domain.StrategyOutput
		if err := json.Unmarshal(raw, &out); err != nil {
			return err
		}
		sess.state.Artifacts.Strategy = &out
		return nil
	})
}

// GenerateTrends runs the trend tracker tool.
func (s *Service) GenerateTrends(ctx context.Context, sessionID string, in domain.TrendsInput) (<-chan struct{}, error) {
	return s.generate(ctx, sessionID, domain.ToolTrends, in, func(sess *Session, raw json.RawMessage) error {
		var out domain.TrendsOutput
		if err := json.Unmarshal(raw, &out); err != nil {
			return err
		}
		sess.state.Artifacts.Trends = &out
		return nil
	})
}

// GenerateHooks runs the viral hook tool.
func (s *Service) GenerateHooks(ctx context.Context, sessionID string, in domain.HooksInput) (<-chan struct{}, error) {
	return s.generate(ctx, sessionID, domain.ToolHooks, in, func(sess *Session, raw json.RawMessage) error {
		var out domain.HooksOutput
		if err := json.Unmarshal(raw, &out); err != nil {
			return err
		}
		sess.state.Artifacts.Hooks = &out
		return nil
	})
}

// GenerateCaptions runs the caption tool. The input may carry a platform
// strategy captured at call time; the slot is never refreshed when that
// strategy later changes.
func (s *Service) GenerateCaptions(ctx context.Context, sessionID string, in domain.CaptionsInput) (<-chan struct{}, error) {
	return s.generate(ctx, sessionID, domain.ToolCaptions, in, func(sess *Session, raw json.RawMessage) error {
		var out domain.CaptionsOutput
		if err := json.Unmarshal(raw, &out); err != nil {
			return err
		}
		sess.state.Artifacts.Captions = &out
		return nil
	})
}

// GenerateCalendar runs the 30-day calendar tool.
func (s *Service) GenerateCalendar(ctx context.Context, sessionID string, in domain.CalendarInput) (<-chan struct{}, error) {
	return s.generate(ctx, sessionID, domain.ToolCalendar, in, func(sess *Session, raw json.RawMessage) error {
		var out domain.CalendarOutput
		if err := json.Unmarshal(raw, &out); err != nil {
			return err
		}
		sess.state.Artifacts.Calendar = &out
		return nil
	})
}

// Translate runs the translation tool synchronously. It owns no artifact
// slot; failures are logged to the session and returned.
func (s *Service) Translate(ctx context.Context, sessionID string, in domain.TranslateInput) (*domain.TranslateOutput, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}

	raw, err := s.llm.Invoke(ctx, domain.ToolTranslate, in)
	if err != nil {
		sess.AddError(fmt.Sprintf("translation failed: %v", err))
		return nil, err
	}
	var out domain.TranslateOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		sess.AddError(fmt.Sprintf("translation returned malformed output: %v", err))
		return nil, err
	}
	return &out, nil
}
