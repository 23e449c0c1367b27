package domain

import "time"

// AppError is one entry in the session error log. Entries are immutable
// once appended; the log is only ever appended to or cleared in bulk.
type AppError struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// JourneyRef points at the persisted journey a session was loaded from or
// last saved as.
type JourneyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Artifacts holds the last successful output of each slot-backed tool.
// A nil slot means the tool has not produced output for the current brand
// facts. Slots are never regenerated implicitly when their inputs change.
type Artifacts struct {
	AudienceInsights *AudienceInsightsOutput `json:"audienceInsights,omitempty"`
	Strategy         *StrategyOutput         `json:"strategy,omitempty"`
	Trends           *TrendsOutput           `json:"trends,omitempty"`
	Hooks            *HooksOutput            `json:"hooks,omitempty"`
	Captions         *CaptionsOutput         `json:"captions,omitempty"`
	Calendar         *CalendarOutput         `json:"calendar,omitempty"`
}

// Clear empties the slot for the given tool. Unknown tools are a no-op.
func (a *Artifacts) Clear(tool Tool) {
	switch tool {
	case ToolAudienceInsights:
		a.AudienceInsights = nil
	case ToolStrategy:
		a.Strategy = nil
	case ToolTrends:
		a.Trends = nil
	case ToolHooks:
		a.Hooks = nil
	case ToolCaptions:
		a.Captions = nil
	case ToolCalendar:
		a.Calendar = nil
	}
}

// SessionState is the live working set of one session: brand facts, the
// artifact slots, the error log and the active journey reference. It is
// owned exclusively by the orchestrator; everything else reads snapshots.
type SessionState struct {
	BrandDetails      string      `json:"brandDetails"`
	TargetDemographic string      `json:"targetDemographic"`
	Industry          string      `json:"industry"`
	Artifacts         Artifacts   `json:"artifacts"`
	Errors            []AppError  `json:"errors"`
	CurrentJourney    *JourneyRef `json:"currentJourney,omitempty"`
}
