package rescore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"leadrank_backend/internal/leads/domain"
	"leadrank_backend/internal/leads/scoring"
	"leadrank_backend/platform/logger"
)

type fakeStore struct {
	mu      sync.Mutex
	leads   []domain.Lead
	listErr error
	failIDs map[uuid.UUID]error
	updates []uuid.UUID
}

func (f *fakeStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Lead, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Lead
	for _, l := range f.leads {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStore) ListAll(ctx context.Context) ([]domain.Lead, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.leads, nil
}

func (f *fakeStore) UpdateScores(ctx context.Context, leadID uuid.UUID, result scoring.Result) error {
	if err, ok := f.failIDs[leadID]; ok {
		return err
	}
	f.mu.Lock()
	f.updates = append(f.updates, leadID)
	f.mu.Unlock()
	return nil
}

func makeLeads(n int, ownerID uuid.UUID) []domain.Lead {
	leads := make([]domain.Lead, n)
	for i := range leads {
		leads[i] = domain.Lead{
			ID:      uuid.New(),
			OwnerID: ownerID,
			Title:   "Marketing Manager",
			Source:  domain.SourceWebsite,
			Status:  domain.StatusNew,
		}
	}
	return leads
}

func newTestOrchestrator(store LeadStore, workers int) *Orchestrator {
	return New(store, scoring.NewEngine(nil), logger.New("development"), workers, 0)
}

func TestRescoreOwnerUpdatesAllLeads(t *testing.T) {
	ownerID := uuid.New()
	store := &fakeStore{leads: makeLeads(10, ownerID)}

	result, err := newTestOrchestrator(store, 4).RescoreOwner(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalLeads != 10 {
		t.Fatalf("TotalLeads = %d, want 10", result.TotalLeads)
	}
	if result.UpdatedCount != 10 {
		t.Fatalf("UpdatedCount = %d, want 10", result.UpdatedCount)
	}
	if len(result.Failures) != 0 {
		t.Fatalf("Failures = %v, want none", result.Failures)
	}
}

func TestRescoreOwnerScopesToOwner(t *testing.T) {
	ownerID := uuid.New()
	leads := makeLeads(3, ownerID)
	leads = append(leads, makeLeads(2, uuid.New())...)
	store := &fakeStore{leads: leads}

	result, err := newTestOrchestrator(store, 4).RescoreOwner(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalLeads != 3 {
		t.Fatalf("TotalLeads = %d, want 3", result.TotalLeads)
	}
}

func TestRescoreToleratesIndividualWriteFailures(t *testing.T) {
	ownerID := uuid.New()
	leads := makeLeads(10, ownerID)
	badID := leads[3].ID
	store := &fakeStore{
		leads:   leads,
		failIDs: map[uuid.UUID]error{badID: errors.New("write timeout")},
	}

	result, err := newTestOrchestrator(store, 4).RescoreOwner(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("individual write failures must not fail the run: %v", err)
	}
	if result.UpdatedCount != 9 {
		t.Fatalf("UpdatedCount = %d, want 9", result.UpdatedCount)
	}
	if len(result.Failures) != 1 {
		t.Fatalf("len(Failures) = %d, want 1", len(result.Failures))
	}
	if result.Failures[0].LeadID != badID {
		t.Fatalf("failure recorded for %s, want %s", result.Failures[0].LeadID, badID)
	}
	if result.Failures[0].Error != "write timeout" {
		t.Fatalf("failure message = %q", result.Failures[0].Error)
	}
}

func TestRescoreFetchFailureIsFatal(t *testing.T) {
	store := &fakeStore{listErr: errors.New("connection refused")}

	result, err := newTestOrchestrator(store, 4).RescoreAll(context.Background())
	if err == nil {
		t.Fatalf("expected fetch error to abort the run")
	}
	if result.TotalLeads != 0 || result.UpdatedCount != 0 {
		t.Fatalf("result should be empty on fatal fetch failure, got %+v", result)
	}
}

func TestRescoreStopsDispatchOnCancellation(t *testing.T) {
	ownerID := uuid.New()
	store := &fakeStore{leads: makeLeads(50, ownerID)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := newTestOrchestrator(store, 4).RescoreOwner(ctx, ownerID)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if result.UpdatedCount > 4 {
		t.Fatalf("cancelled run updated %d leads, want at most the in-flight workers", result.UpdatedCount)
	}
}

func TestRescoreEmptyBatch(t *testing.T) {
	store := &fakeStore{}

	result, err := newTestOrchestrator(store, 4).RescoreAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalLeads != 0 || result.UpdatedCount != 0 || len(result.Failures) != 0 {
		t.Fatalf("empty batch should produce an empty result, got %+v", result)
	}
}
