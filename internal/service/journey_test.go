package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandloom/brandloom/internal/domain"
)

func TestSaveCurrentJourneyCreatesWhenNoActiveJourney(t *testing.T) {
	svc := newTestService(t, newBlockingClient())
	sess := svc.CreateSession()
	sess.SetBrandFacts("eco widgets", "urban millennials", "retail")

	ref, err := svc.SaveCurrentJourney(context.Background(), sess.ID, "Acme")
	require.NoError(t, err)
	assert.NotEmpty(t, ref.ID)
	assert.Equal(t, "Acme", ref.Name)

	state := sess.Snapshot()
	require.NotNil(t, state.CurrentJourney)
	assert.Equal(t, ref.ID, state.CurrentJourney.ID)
}

func TestSaveCurrentJourneyUpdatesInPlace(t *testing.T) {
	svc := newTestService(t, newBlockingClient())
	sess := svc.CreateSession()
	ctx := context.Background()

	first, err := svc.SaveCurrentJourney(ctx, sess.ID, "Acme")
	require.NoError(t, err)

	sess.SetBrandFacts("updated details", "updated audience", "retail")
	second, err := svc.SaveCurrentJourney(ctx, sess.ID, "Acme renamed")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Acme renamed", second.Name)

	items, err := svc.ListJourneys(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme renamed", items[0].Name)
}

func TestSaveAsNewJourneyAlwaysBranches(t *testing.T) {
	svc := newTestService(t, newBlockingClient())
	sess := svc.CreateSession()
	ctx := context.Background()

	first, err := svc.SaveAsNewJourney(ctx, sess.ID, "Acme")
	require.NoError(t, err)
	second, err := svc.SaveAsNewJourney(ctx, sess.ID, "Acme")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// The session now points at the newest snapshot.
	state := sess.Snapshot()
	require.NotNil(t, state.CurrentJourney)
	assert.Equal(t, second.ID, state.CurrentJourney.ID)

	// The first snapshot is untouched: a sibling, not a branch.
	items, err := svc.ListJourneys(ctx, sess.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestLoadJourneyReplacesStateAndResetsErrors(t *testing.T) {
	svc := newTestService(t, newBlockingClient())
	ctx := context.Background()

	src := svc.CreateSession()
	src.SetBrandFacts("eco widgets", "urban millennials", "retail")
	src.mu.Lock()
	src.state.Artifacts.Hooks = &domain.HooksOutput{ViralHooks: []string{"hook"}}
	src.mu.Unlock()
	ref, err := svc.SaveAsNewJourney(ctx, src.ID, "Acme")
	require.NoError(t, err)

	dst := svc.CreateSession()
	dst.SetBrandFacts("other brand", "other audience", "other")
	dst.AddError("pre-load failure")

	require.NoError(t, svc.LoadJourney(ctx, dst.ID, ref.ID))

	state := dst.Snapshot()
	assert.Equal(t, "eco widgets", state.BrandDetails)
	assert.Equal(t, "urban millennials", state.TargetDemographic)
	assert.Equal(t, "retail", state.Industry)
	require.NotNil(t, state.Artifacts.Hooks)
	assert.Equal(t, []string{"hook"}, state.Artifacts.Hooks.ViralHooks)
	require.NotNil(t, state.CurrentJourney)
	assert.Equal(t, ref.ID, state.CurrentJourney.ID)
	assert.Equal(t, "Acme", state.CurrentJourney.Name)

	// A fresh load starts a fresh error history.
	assert.Empty(t, state.Errors)
	dst.ClearErrors()
	assert.Empty(t, dst.Snapshot().Errors)
}

func TestErrorLogExcludedFromPayload(t *testing.T) {
	svc := newTestService(t, newBlockingClient())
	ctx := context.Background()

	src := svc.CreateSession()
	src.AddError("should not be persisted")
	ref, err := svc.SaveAsNewJourney(ctx, src.ID, "with errors")
	require.NoError(t, err)

	dst := svc.CreateSession()
	require.NoError(t, svc.LoadJourney(ctx, dst.ID, ref.ID))
	assert.Empty(t, dst.Snapshot().Errors)
}

func TestLoadJourneyNotFound(t *testing.T) {
	svc := newTestService(t, newBlockingClient())
	sess := svc.CreateSession()

	err := svc.LoadJourney(context.Background(), sess.ID, "j_missing")
	require.Error(t, err)

	state := sess.Snapshot()
	require.Len(t, state.Errors, 1)
	assert.Contains(t, state.Errors[0].Message, "failed to load journey")
}

func TestLoadJourneyInvalidatesInFlightGeneration(t *testing.T) {
	client := newBlockingClient()
	svc := newTestService(t, client)
	ctx := context.Background()

	sess := svc.CreateSession()
	ref, err := svc.SaveAsNewJourney(ctx, sess.ID, "clean")
	require.NoError(t, err)

	done, err := svc.GenerateHooks(ctx, sess.ID, domain.HooksInput{})
	require.NoError(t, err)
	call := <-client.started

	require.NoError(t, svc.LoadJourney(ctx, sess.ID, ref.ID))

	// The pre-load invocation resolves after the load; its result must not
	// leak into the freshly loaded state.
	call.respond <- invokeResult{raw: hooksJSON("stale")}
	<-done
	assert.Nil(t, sess.Snapshot().Artifacts.Hooks)
}

func TestSaveRoundTripPreservesArtifacts(t *testing.T) {
	svc := newTestService(t, newBlockingClient())
	ctx := context.Background()

	src := svc.CreateSession()
	src.mu.Lock()
	src.state.Artifacts.Calendar = &domain.CalendarOutput{Calendar: []domain.CalendarEntry{
		{Day: 1, PostType: "Value", Topic: "intro", Caption: "hello"},
	}}
	src.state.Artifacts.Strategy = &domain.StrategyOutput{
		Instagram: domain.PlatformStrategy{Strategy: "ig plan"},
	}
	src.mu.Unlock()

	ref, err := svc.SaveAsNewJourney(ctx, src.ID, "full")
	require.NoError(t, err)

	dst := svc.CreateSession()
	require.NoError(t, svc.LoadJourney(ctx, dst.ID, ref.ID))

	state := dst.Snapshot()
	require.NotNil(t, state.Artifacts.Calendar)
	assert.Equal(t, "intro", state.Artifacts.Calendar.Calendar[0].Topic)
	require.NotNil(t, state.Artifacts.Strategy)
	assert.Equal(t, "ig plan", state.Artifacts.Strategy.Instagram.Strategy)
}
