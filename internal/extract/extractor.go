// Package extract turns an arbitrary website URL into a bounded plain-text
// excerpt suitable for brand and audience analysis.
package extract

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// ErrInvalidInput reports a string that is not an absolute, well-formed URL.
var ErrInvalidInput = errors.New("not a valid absolute URL")

// ErrInsufficientContent reports a page that parsed but yielded too little
// text to analyze. This usually means the content is rendered client-side
// and never appears in the initial HTML payload.
var ErrInsufficientContent = errors.New(
	"could not extract enough content from the page; it may be rendered with JavaScript. Try uploading a PDF instead")

// FetchError reports a network or HTTP-layer failure.
type FetchError struct {
	StatusCode int
	Reason     string
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed with status %d; the site may be blocking automated requests or require authentication", e.StatusCode)
	}
	return fmt.Sprintf("fetch failed: %s", e.Reason)
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Options tune the extractor. The content-selection order and the minimum
// length are empirically chosen heuristics, kept configurable so tests can
// override them.
type Options struct {
	// HTTPClient defaults to a client with a 30s timeout.
	HTTPClient *http.Client
	// MinContentLength defaults to 100 characters.
	MinContentLength int
	// UserAgent defaults to a browser-like signature. Many sites reject
	// requests without one.
	UserAgent string
	// Selectors is the ordered list of elements tried for primary content.
	// Defaults to main, article, body.
	Selectors []string
}

// Extractor fetches and extracts web page text. No retries are attempted;
// network flakiness is surfaced immediately.
type Extractor struct {
	client    *http.Client
	minLen    int
	userAgent string
	selectors []string
}

// New builds an Extractor, filling unset options with defaults.
func New(opts Options) *Extractor {
	e := &Extractor{
		client:    opts.HTTPClient,
		minLen:    opts.MinContentLength,
		userAgent: opts.UserAgent,
		selectors: opts.Selectors,
	}
	if e.client == nil {
		e.client = &http.Client{Timeout: 30 * time.Second}
	}
	if e.minLen == 0 {
		e.minLen = 100
	}
	if e.userAgent == "" {
		e.userAgent = defaultUserAgent
	}
	if len(e.selectors) == 0 {
		e.selectors = []string{"main", "article", "body"}
	}
	return e
}

// FromURL fetches the page at rawURL and returns its normalized primary
// text content.
func (e *Extractor) FromURL(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%q: %w", rawURL, ErrInvalidInput)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%q: %w", rawURL, ErrInvalidInput)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", &FetchError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{StatusCode: resp.StatusCode}
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", &FetchError{Reason: "parse: " + err.Error()}
	}
	prune(doc)

	text := e.selectContent(doc)
	if len(text) < e.minLen {
		return "", ErrInsufficientContent
	}
	return text, nil
}

// selectContent walks the selector list in order and returns the first
// non-empty normalized text. Semantically marked primary content wins over
// full-page chrome when present.
func (e *Extractor) selectContent(doc *html.Node) string {
	for _, sel := range e.selectors {
		if n := findElement(doc, sel); n != nil {
			if text := Normalize(textContent(n)); text != "" {
				return text
			}
		}
	}
	return ""
}

// Normalize collapses whitespace runs (including newlines) to single spaces
// and trims the result. Idempotent.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// prune removes script and style subtrees so they never pollute the
// extracted text.
func prune(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.ElementNode && (c.Data == "script" || c.Data == "style") {
			n.RemoveChild(c)
			continue
		}
		prune(c)
	}
}

// findElement returns the first element with the given tag name, depth-first.
func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

// textContent concatenates all text nodes under n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
