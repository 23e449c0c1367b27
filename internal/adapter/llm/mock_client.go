package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brandloom/brandloom/internal/domain"
)

// MockClient is a canned-response implementation of Client for local
// development and tests.
type MockClient struct{}

// NewMockClient creates a new mock client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Close is a no-op.
func (m *MockClient) Close() error { return nil }

// Invoke returns a schema-shaped mock output for the given tool.
func (m *MockClient) Invoke(ctx context.Context, tool domain.Tool, input any) (json.RawMessage, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var out any
	switch tool {
	case domain.ToolAudienceInsights:
		out = domain.AudienceInsightsOutput{
			AudienceAnalysisReport: "[MOCK] Audience analysis report covering pain points, desires, behaviors and demographics.",
		}
	case domain.ToolStrategy:
		p := domain.PlatformStrategy{
			Strategy: "[MOCK] Platform strategy.",
			Tactics: domain.PlatformTactics{
				PostingTimes:    "[MOCK] Weekdays 9am-11am.",
				HashtagStrategy: "[MOCK] Mix of niche and broad hashtags.",
				GrowthHacks:     "[MOCK] Collaborate with micro-influencers.",
			},
		}
		out = domain.StrategyOutput{Instagram: p, TikTok: p, LinkedIn: p, X: p}
	case domain.ToolTrends:
		trend := []domain.Trend{{
			Topic:       "[MOCK] Trend",
			Description: "[MOCK] Why it is trending.",
			ContentIdea: "[MOCK] A concrete content idea.",
		}}
		out = domain.TrendsOutput{X: trend, Facebook: trend, Instagram: trend, LinkedIn: trend, TikTok: trend}
	case domain.ToolHooks:
		out = domain.HooksOutput{ViralHooks: []string{
			"[MOCK] Hook one", "[MOCK] Hook two", "[MOCK] Hook three",
			"[MOCK] Hook four", "[MOCK] Hook five",
		}}
	case domain.ToolCaptions:
		out = domain.CaptionsOutput{Captions: []string{"[MOCK] Caption one", "[MOCK] Caption two", "[MOCK] Caption three"}}
	case domain.ToolCalendar:
		entries := make([]domain.CalendarEntry, 0, 30)
		types := []string{"Value", "Authority", "Engagement", "Call to Action"}
		for day := 1; day <= 30; day++ {
			entries = append(entries, domain.CalendarEntry{
				Day:      day,
				PostType: types[(day-1)%len(types)],
				Topic:    fmt.Sprintf("[MOCK] Topic for day %d", day),
				Caption:  fmt.Sprintf("[MOCK] Caption for day %d", day),
			})
		}
		out = domain.CalendarOutput{Calendar: entries}
	case domain.ToolTranslate:
		out = domain.TranslateOutput{TranslatedText: "[MOCK] Translated text."}
	case domain.ToolAutofill:
		out = domain.AutofillOutput{
			BrandDetails:      "[MOCK] Brand details extracted from the provided content.",
			TargetDemographic: "[MOCK] Target demographic extracted from the provided content.",
		}
	default:
		return nil, fmt.Errorf("unknown tool %q", tool)
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return raw, nil
}
