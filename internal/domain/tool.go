// Package domain defines the core domain models for the orchestrator.
package domain

import "fmt"

// Tool identifies one generator.
type Tool string

const (
	ToolAudienceInsights Tool = "audience-insights"
	ToolStrategy         Tool = "strategy"
	ToolTrends           Tool = "trends"
	ToolHooks            Tool = "hooks"
	ToolCaptions         Tool = "captions"
	ToolCalendar         Tool = "calendar"
	ToolTranslate        Tool = "translate"
	ToolAutofill         Tool = "autofill"
)

// SlotTools lists the tools whose output is stored in a session artifact
// slot. Translate returns its result directly and autofill writes brand
// facts, so neither owns a slot.
var SlotTools = []Tool{
	ToolAudienceInsights,
	ToolStrategy,
	ToolTrends,
	ToolHooks,
	ToolCaptions,
	ToolCalendar,
}

// ParseSlotTool validates a tool name coming in over the wire.
func ParseSlotTool(name string) (Tool, error) {
	for _, t := range SlotTools {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tool %q", name)
}
