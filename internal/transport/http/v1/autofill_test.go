package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestAutofillRejectsUnknownKind(t *testing.T) {
	e := echo.New()
	h, svc := newTestHandler(t)
	sess := svc.CreateSession()

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+sess.ID+"/autofill", bytes.NewBufferString(`{"kind":"carrier-pigeon","data":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues(sess.ID)

	if err := h.Autofill(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAutofillRequiresData(t *testing.T) {
	e := echo.New()
	h, svc := newTestHandler(t)
	sess := svc.CreateSession()

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+sess.ID+"/autofill", bytes.NewBufferString(`{"kind":"url"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues(sess.ID)

	if err := h.Autofill(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAutofillFromURL(t *testing.T) {
	page := `<html><body><main><p>Hello world, this brand sells eco-friendly widgets to urban millennials who care about sustainability and minimal waste in their daily lives.</p></main></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	e := echo.New()
	h, svc := newTestHandler(t)
	sess := svc.CreateSession()

	body := fmt.Sprintf(`{"kind":"url","data":%q}`, srv.URL)
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+sess.ID+"/autofill", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues(sess.ID)

	if err := h.Autofill(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}

	waitFor(t, func() bool {
		return sess.Snapshot().BrandDetails != ""
	})
	state := sess.Snapshot()
	if state.TargetDemographic == "" {
		t.Fatalf("expected derived brand facts, got %+v", state)
	}
	if len(state.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", state.Errors)
	}
}
