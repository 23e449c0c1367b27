package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brandloom/brandloom/internal/domain"
)

// AutofillRequest is the request to derive brand facts from a document.
type AutofillRequest struct {
	Kind string `json:"kind"`
	Data string `json:"data"`
}

// Autofill derives brand facts from a PDF data URI or a website URL. Like
// the generators it returns immediately; the derived facts (or a failure
// entry) surface in the session state.
// POST /v1/sessions/:session_id/autofill
func (h *Handler) Autofill(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	var req AutofillRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	kind := domain.SourceKind(req.Kind)
	if kind != domain.SourcePDF && kind != domain.SourceURL {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "kind must be pdf or url"})
	}
	if req.Data == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "data is required"})
	}

	_, err := h.service.Autofill(ctx, sessionID, domain.AutofillSource{Kind: kind, Data: req.Data})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusAccepted, map[string]interface{}{
		"status": "pending",
	})
}
