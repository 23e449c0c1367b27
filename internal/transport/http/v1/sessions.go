package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CreateSession opens a fresh working session.
// POST /v1/sessions
func (h *Handler) CreateSession(c echo.Context) error {
	sess := h.service.CreateSession()
	return c.JSON(http.StatusOK, map[string]string{
		"session_id": sess.ID,
	})
}

// GetSessionState returns the current session state snapshot.
// GET /v1/sessions/:session_id
func (h *Handler) GetSessionState(c echo.Context) error {
	sess, err := h.service.Session(c.Param("session_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, sess.Snapshot())
}

// BrandFactsRequest is the request to replace the session's brand facts.
type BrandFactsRequest struct {
	BrandDetails      string `json:"brand_details"`
	TargetDemographic string `json:"target_demographic"`
	Industry          string `json:"industry"`
}

// SetBrandFacts replaces the brand facts on a session.
// PUT /v1/sessions/:session_id/brand-facts
func (h *Handler) SetBrandFacts(c echo.Context) error {
	sess, err := h.service.Session(c.Param("session_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	var req BrandFactsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	sess.SetBrandFacts(req.BrandDetails, req.TargetDemographic, req.Industry)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok": true,
	})
}

// ClearErrors empties the session's error log.
// POST /v1/sessions/:session_id/errors/clear
func (h *Handler) ClearErrors(c echo.Context) error {
	sess, err := h.service.Session(c.Param("session_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	sess.ClearErrors()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok": true,
	})
}
