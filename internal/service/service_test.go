package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/brandloom/brandloom/internal/adapter/llm"
	"github.com/brandloom/brandloom/internal/config"
	"github.com/brandloom/brandloom/internal/domain"
	"github.com/brandloom/brandloom/internal/extract"
	"github.com/brandloom/brandloom/internal/store"
	"github.com/brandloom/brandloom/policy"
)

// invokeResult is the scripted outcome of one blockingClient call.
type invokeResult struct {
	raw json.RawMessage
	err error
}

// pendingCall is one in-flight Invoke waiting for the test to respond.
type pendingCall struct {
	Tool    domain.Tool
	Input   any
	respond chan invokeResult
}

// blockingClient parks every Invoke until the test releases it, so tests
// can control completion order.
type blockingClient struct {
	started chan *pendingCall
}

func newBlockingClient() *blockingClient {
	return &blockingClient{started: make(chan *pendingCall, 8)}
}

func (c *blockingClient) Invoke(ctx context.Context, tool domain.Tool, input any) (json.RawMessage, error) {
	call := &pendingCall{Tool: tool, Input: input, respond: make(chan invokeResult, 1)}
	c.started <- call
	res := <-call.respond
	return res.raw, res.err
}

func (c *blockingClient) Close() error { return nil }

var _ llm.Client = (*blockingClient)(nil)

func newTestService(t *testing.T, client llm.Client) *Service {
	t.Helper()
	st, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	eng, err := policy.NewEngine(context.Background(), policy.AllowAll)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return New(st, client, extract.New(extract.Options{}), eng, &config.Config{})
}
