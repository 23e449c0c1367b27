// Package v1 provides the HTTP handlers for the orchestrator.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brandloom/brandloom/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Session lifecycle and state reads
	e.POST("/v1/sessions", h.CreateSession)
	e.GET("/v1/sessions/:session_id", h.GetSessionState)
	e.PUT("/v1/sessions/:session_id/brand-facts", h.SetBrandFacts)
	e.POST("/v1/sessions/:session_id/errors/clear", h.ClearErrors)

	// Generators
	e.POST("/v1/sessions/:session_id/generate/:tool", h.Generate)
	e.POST("/v1/sessions/:session_id/translate", h.Translate)
	e.POST("/v1/sessions/:session_id/autofill", h.Autofill)

	// Journeys
	e.POST("/v1/sessions/:session_id/journeys/save", h.SaveJourney)
	e.POST("/v1/sessions/:session_id/journeys/save-as", h.SaveAsNewJourney)
	e.POST("/v1/sessions/:session_id/journeys/:journey_id/load", h.LoadJourney)
	e.GET("/v1/sessions/:session_id/journeys", h.ListJourneys)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
