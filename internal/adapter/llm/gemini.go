package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/time/rate"
	genai "google.golang.org/genai"

	"github.com/brandloom/brandloom/internal/domain"
)

// ErrEmptyResponse reports a generation call that returned no candidates.
var ErrEmptyResponse = errors.New("llm: empty response from model")

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli     *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewGeminiClient builds a Gemini-backed client. rps <= 0 disables rate
// limiting.
func NewGeminiClient(ctx context.Context, apiKey, model string, rps float64, burst int) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
		if burst < 1 {
			burst = 1
		}
	}
	return &GeminiClient{
		cli:     cli,
		model:   model,
		limiter: rate.NewLimiter(limit, burst),
	}, nil
}

// Close releases client resources.
func (g *GeminiClient) Close() error { return nil }

// Invoke sends the tool's instruction plus the structured input and requests
// application/json back. PDF autofill sources are forwarded as inline blobs
// rather than text; the model reads the embedded document directly.
func (g *GeminiClient) Invoke(ctx context.Context, tool domain.Tool, input any) (json.RawMessage, error) {
	instruction, err := promptFor(tool)
	if err != nil {
		return nil, err
	}

	parts, err := buildParts(instruction, tool, input)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		resp, err := g.cli.Models.GenerateContent(ctx, g.model,
			[]*genai.Content{{Parts: parts}},
			&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
		)
		if err != nil {
			lastErr = err
		} else if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			lastErr = ErrEmptyResponse
		} else {
			return json.RawMessage(resp.Candidates[0].Content.Parts[0].Text), nil
		}
		log.Printf("gemini %s attempt %d failed: %v", tool, attempt+1, lastErr)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(300*(1<<attempt)) * time.Millisecond):
		}
	}
	return nil, lastErr
}

// buildParts assembles the request parts. For a PDF autofill source the
// document travels as an inline blob next to the instruction; everything
// else is instruction text plus the input marshaled as JSON.
func buildParts(instruction string, tool domain.Tool, input any) ([]*genai.Part, error) {
	if tool == domain.ToolAutofill {
		if in, ok := input.(domain.AutofillInput); ok && in.Source.Kind == domain.SourcePDF {
			blob, err := decodeDataURI(in.Source.Data)
			if err != nil {
				return nil, err
			}
			return []*genai.Part{
				{Text: instruction},
				{InlineData: blob},
			}, nil
		}
	}

	in, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}
	return []*genai.Part{{Text: instruction + "\n\n[INPUT JSON]\n" + string(in)}}, nil
}

// decodeDataURI parses a data:<mime>;base64,<payload> URI into a blob.
func decodeDataURI(uri string) (*genai.Blob, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, fmt.Errorf("pdf payload is not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("pdf payload is not a data URI")
	}
	mime, _ := strings.CutSuffix(meta, ";base64")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode pdf payload: %w", err)
	}
	if mime == "" {
		mime = "application/pdf"
	}
	return &genai.Blob{MIMEType: mime, Data: data}, nil
}
