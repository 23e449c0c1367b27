// Package service implements the orchestrator: the single place where UI
// intents become session state mutations.
package service

import (
	"sync"

	"github.com/brandloom/brandloom/internal/adapter/llm"
	"github.com/brandloom/brandloom/internal/config"
	"github.com/brandloom/brandloom/internal/extract"
	"github.com/brandloom/brandloom/internal/store"
	"github.com/brandloom/brandloom/policy"
)

// Service mediates between intents and the generation client, content
// extractor and journey store. All session state mutations go through it.
type Service struct {
	store     store.Store
	llm       llm.Client
	extractor *extract.Extractor
	policy    *policy.Engine
	config    *config.Config

	mu       sync.Mutex
	sessions map[string]*Session
}

// New creates the orchestrator service.
func New(st store.Store, llmClient llm.Client, extractor *extract.Extractor, policyEngine *policy.Engine, cfg *config.Config) *Service {
	return &Service{
		store:     st,
		llm:       llmClient,
		extractor: extractor,
		policy:    policyEngine,
		config:    cfg,
		sessions:  make(map[string]*Session),
	}
}
