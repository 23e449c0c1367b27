package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"

	"github.com/brandloom/brandloom/internal/domain"
)

// Autofill derives brand facts from a PDF payload or a website URL. URL
// sources pass the fetch policy and the content extractor first; PDF
// payloads are forwarded to the generation backend unmodified. On success
// the extracted facts replace the session's brand details and target
// demographic, and the audience insights slot is cleared because any
// previous report is now based on stale facts. The returned channel closes
// when the whole operation has resolved.
func (s *Service) Autofill(ctx context.Context, sessionID string, src domain.AutofillSource) (<-chan struct{}, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}
	if src.Kind != domain.SourcePDF && src.Kind != domain.SourceURL {
		return nil, fmt.Errorf("unknown autofill source kind %q", src.Kind)
	}

	callCtx := context.WithoutCancel(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.runAutofill(callCtx, sess, src)
	}()
	return done, nil
}

func (s *Service) runAutofill(ctx context.Context, sess *Session, src domain.AutofillSource) {
	input := domain.AutofillInput{Source: src}

	if src.Kind == domain.SourceURL {
		if !s.fetchAllowed(ctx, sess, src.Data) {
			return
		}
		text, err := s.extractor.FromURL(ctx, src.Data)
		if err != nil {
			sess.AddError(fmt.Sprintf("autofill failed: %v", err))
			return
		}
		input.Source = domain.AutofillSource{Kind: domain.SourceText, Data: text}
	}

	raw, err := s.llm.Invoke(ctx, domain.ToolAutofill, input)
	if err != nil {
		sess.AddError(fmt.Sprintf("autofill generation failed: %v", err))
		return
	}
	var out domain.AutofillOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		sess.AddError(fmt.Sprintf("autofill returned malformed output: %v", err))
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.state.BrandDetails = out.BrandDetails
	sess.state.TargetDemographic = out.TargetDemographic
	// Brand facts just changed, so the previous report no longer applies.
	// Bumping the sequence also invalidates any in-flight insights call.
	sess.seq[domain.ToolAudienceInsights]++
	sess.state.Artifacts.Clear(domain.ToolAudienceInsights)
}

// fetchAllowed runs the outbound fetch policy. A block is reported to the
// error log like any other autofill failure.
func (s *Service) fetchAllowed(ctx context.Context, sess *Session, rawURL string) bool {
	if s.policy == nil {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		// The extractor produces the user-facing invalid-URL message.
		return true
	}
	decision, err := s.policy.Evaluate(ctx, map[string]any{
		"scheme": u.Scheme,
		"host":   u.Hostname(),
	})
	if err != nil {
		log.Printf("fetch policy evaluation failed: %v", err)
		sess.AddError(fmt.Sprintf("autofill failed: fetch policy error: %v", err))
		return false
	}
	if decision != "allow" {
		sess.AddError(fmt.Sprintf("autofill failed: fetching %s is not permitted", rawURL))
		return false
	}
	return true
}
