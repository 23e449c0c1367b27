package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brandloom/brandloom/internal/domain"
)

// Generate starts one generator tool against a session. The call returns as
// soon as the invocation is in flight; the result lands in the session's
// artifact slot (or its error log) and is observed via GetSessionState.
// POST /v1/sessions/:session_id/generate/:tool
func (h *Handler) Generate(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	tool, err := domain.ParseSlotTool(c.Param("tool"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if _, err := h.service.Session(sessionID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	switch tool {
	case domain.ToolAudienceInsights:
		var in domain.AudienceInsightsInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		_, err = h.service.GenerateAudienceInsights(ctx, sessionID, in)
	case domain.ToolStrategy:
		var in domain.StrategyInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		_, err = h.service.GenerateStrategy(ctx, sessionID, in)
	case domain.ToolTrends:
		var in domain.TrendsInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		_, err = h.service.GenerateTrends(ctx, sessionID, in)
	case domain.ToolHooks:
		var in domain.HooksInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		_, err = h.service.GenerateHooks(ctx, sessionID, in)
	case domain.ToolCaptions:
		var in domain.CaptionsInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		_, err = h.service.GenerateCaptions(ctx, sessionID, in)
	case domain.ToolCalendar:
		var in domain.CalendarInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		_, err = h.service.GenerateCalendar(ctx, sessionID, in)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusAccepted, map[string]interface{}{
		"status": "pending",
		"tool":   tool,
	})
}

// Translate runs the translation tool and returns the result directly; it
// writes no artifact slot.
// POST /v1/sessions/:session_id/translate
func (h *Handler) Translate(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	var in domain.TranslateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if in.TextToTranslate == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "textToTranslate is required"})
	}
	if in.TargetLanguage == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "targetLanguage is required"})
	}

	if _, err := h.service.Session(sessionID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	out, err := h.service.Translate(ctx, sessionID, in)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
