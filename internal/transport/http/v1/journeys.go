package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// JourneySaveRequest is the request to persist the session as a journey.
type JourneySaveRequest struct {
	Name string `json:"name"`
}

// SaveJourney persists the session under its active journey, or creates one
// when the session has none.
// POST /v1/sessions/:session_id/journeys/save
func (h *Handler) SaveJourney(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	var req JourneySaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	if _, err := h.service.Session(sessionID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	ref, err := h.service.SaveCurrentJourney(ctx, sessionID, req.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"journey_id": ref.ID,
		"name":       ref.Name,
	})
}

// SaveAsNewJourney always creates a fresh journey snapshot.
// POST /v1/sessions/:session_id/journeys/save-as
func (h *Handler) SaveAsNewJourney(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	var req JourneySaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	if _, err := h.service.Session(sessionID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	ref, err := h.service.SaveAsNewJourney(ctx, sessionID, req.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"journey_id": ref.ID,
		"name":       ref.Name,
	})
}

// LoadJourney replaces the session state with a persisted snapshot and
// returns the resulting state.
// POST /v1/sessions/:session_id/journeys/:journey_id/load
func (h *Handler) LoadJourney(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	sess, err := h.service.Session(sessionID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	if err := h.service.LoadJourney(ctx, sessionID, c.Param("journey_id")); err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		return c.JSON(status, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, sess.Snapshot())
}

// ListJourneys lists all saved journeys, most recently saved first.
// GET /v1/sessions/:session_id/journeys
func (h *Handler) ListJourneys(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.service.ListJourneys(ctx, c.Param("session_id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"journeys": items,
	})
}
