package extract

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const longText = "Hello world, this brand sells eco-friendly widgets to urban millennials who care about sustainability and minimal waste in their daily lives."

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFromURLPrefersMain(t *testing.T) {
	srv := serve(t, http.StatusOK,
		`<html><body><nav>chrome chrome</nav><main><p>`+longText+`</p></main><article>sidebar article text that is also long enough to matter but must not win</article></body></html>`)

	e := New(Options{})
	text, err := e.FromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FromURL failed: %v", err)
	}
	assert.Equal(t, longText, text)
}

func TestFromURLArticleFallback(t *testing.T) {
	srv := serve(t, http.StatusOK,
		`<html><body><div>chrome</div><article>`+longText+`</article></body></html>`)

	e := New(Options{})
	text, err := e.FromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FromURL failed: %v", err)
	}
	assert.Equal(t, longText, text)
}

func TestFromURLBodyFallback(t *testing.T) {
	srv := serve(t, http.StatusOK,
		`<html><body><p>`+longText+`</p></body></html>`)

	e := New(Options{})
	text, err := e.FromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FromURL failed: %v", err)
	}
	assert.Equal(t, longText, text)
}

func TestFromURLExcludesScriptsAndStyles(t *testing.T) {
	srv := serve(t, http.StatusOK,
		`<html><body><script>var x = "should not appear";</script><style>.x{color:red}</style><p>`+longText+`</p></body></html>`)

	e := New(Options{})
	text, err := e.FromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FromURL failed: %v", err)
	}
	assert.Equal(t, longText, text)
	assert.NotContains(t, text, "should not appear")
}

func TestFromURLCollapsesWhitespace(t *testing.T) {
	srv := serve(t, http.StatusOK,
		"<html><body><main><p>  Hello \n\n world,   this\tbrand sells eco-friendly widgets to urban millennials who care about sustainability and minimal waste in their daily lives.  </p></main></body></html>")

	e := New(Options{})
	text, err := e.FromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FromURL failed: %v", err)
	}
	if strings.Contains(text, "  ") || strings.Contains(text, "\n") {
		t.Fatalf("whitespace not collapsed: %q", text)
	}
	assert.True(t, strings.HasPrefix(text, "Hello world, this brand"))
}

func TestFromURLInsufficientContent(t *testing.T) {
	srv := serve(t, http.StatusOK, `<html><body><main>too short</main></body></html>`)

	e := New(Options{})
	_, err := e.FromURL(context.Background(), srv.URL)
	if !errors.Is(err, ErrInsufficientContent) {
		t.Fatalf("expected ErrInsufficientContent, got %v", err)
	}
}

func TestFromURLMinLengthOverride(t *testing.T) {
	srv := serve(t, http.StatusOK, `<html><body><main>short but fine</main></body></html>`)

	e := New(Options{MinContentLength: 5})
	text, err := e.FromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FromURL failed: %v", err)
	}
	assert.Equal(t, "short but fine", text)
}

func TestFromURLNon2xx(t *testing.T) {
	srv := serve(t, http.StatusForbidden, "denied")

	e := New(Options{})
	_, err := e.FromURL(context.Background(), srv.URL)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	assert.Equal(t, http.StatusForbidden, fe.StatusCode)
	assert.Contains(t, fe.Error(), "403")
	assert.Contains(t, fe.Error(), "blocking automated requests")
}

func TestFromURLInvalidInput(t *testing.T) {
	e := New(Options{})
	for _, raw := range []string{"", "not a url", "/relative/path", "example.com/no-scheme"} {
		_, err := e.FromURL(context.Background(), raw)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q: expected ErrInvalidInput, got %v", raw, err)
		}
	}
}

func TestFromURLNetworkError(t *testing.T) {
	srv := serve(t, http.StatusOK, "x")
	url := srv.URL
	srv.Close()

	e := New(Options{})
	_, err := e.FromURL(context.Background(), url)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	assert.Zero(t, fe.StatusCode)
}

func TestFromURLSendsBrowserHeaders(t *testing.T) {
	var ua, accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		accept = r.Header.Get("Accept")
		w.Write([]byte(`<html><body><main>` + longText + `</main></body></html>`))
	}))
	defer srv.Close()

	e := New(Options{})
	if _, err := e.FromURL(context.Background(), srv.URL); err != nil {
		t.Fatalf("FromURL failed: %v", err)
	}
	assert.Contains(t, ua, "Mozilla/5.0")
	assert.Contains(t, accept, "text/html")
}

func TestNormalizeIdempotent(t *testing.T) {
	in := "  a \t b\n\nc  "
	once := Normalize(in)
	assert.Equal(t, "a b c", once)
	assert.Equal(t, once, Normalize(once))
}
