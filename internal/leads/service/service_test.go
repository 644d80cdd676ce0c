package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"leadrank_backend/internal/leads/domain"
	"leadrank_backend/internal/leads/repository"
	"leadrank_backend/internal/leads/rescore"
	"leadrank_backend/internal/leads/scoring"
	"leadrank_backend/platform/apperr"
	"leadrank_backend/platform/logger"
)

type stubRepo struct {
	mu    sync.Mutex
	leads map[uuid.UUID]domain.Lead
}

func newStubRepo(leads ...domain.Lead) *stubRepo {
	r := &stubRepo{leads: make(map[uuid.UUID]domain.Lead)}
	for _, l := range leads {
		r.leads[l.ID] = l
	}
	return r
}

func (r *stubRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Lead, error) {
	lead, ok := r.leads[id]
	if !ok {
		return domain.Lead{}, repository.ErrNotFound
	}
	return lead, nil
}

func (r *stubRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Lead, error) {
	var out []domain.Lead
	for _, l := range r.leads {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubRepo) ListAll(ctx context.Context) ([]domain.Lead, error) {
	var out []domain.Lead
	for _, l := range r.leads {
		out = append(out, l)
	}
	return out, nil
}

func (r *stubRepo) UpdateScores(ctx context.Context, leadID uuid.UUID, result scoring.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lead, ok := r.leads[leadID]
	if !ok {
		return repository.ErrNotFound
	}
	lead.IntentScore = result.IntentScore
	lead.MarketingScore = result.MarketingScore
	r.leads[leadID] = lead
	return nil
}

func newTestService(repo repository.LeadsRepository) *Service {
	engine := scoring.NewEngine(nil)
	orchestrator := rescore.New(repo, engine, logger.New("development"), 2, 0)
	return New(repo, engine, orchestrator)
}

func TestListRankedOrdersByIntent(t *testing.T) {
	ownerID := uuid.New()
	cold := domain.Lead{ID: uuid.New(), OwnerID: ownerID, Email: "cold@x.com", IntentScore: 10}
	hot := domain.Lead{ID: uuid.New(), OwnerID: ownerID, Email: "hot@x.com", IntentScore: 90}
	other := domain.Lead{ID: uuid.New(), OwnerID: uuid.New(), Email: "other@x.com", IntentScore: 99}

	svc := newTestService(newStubRepo(cold, hot, other))

	leads, err := svc.ListRanked(context.Background(), ownerID, 0)
	if err != nil {
		t.Fatalf("ListRanked: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("len = %d, want owner's 2 leads", len(leads))
	}
	if leads[0].Email != "hot@x.com" {
		t.Fatalf("first lead = %s, want highest intent", leads[0].Email)
	}
}

func TestListRankedLimit(t *testing.T) {
	ownerID := uuid.New()
	repo := newStubRepo(
		domain.Lead{ID: uuid.New(), OwnerID: ownerID, IntentScore: 10},
		domain.Lead{ID: uuid.New(), OwnerID: ownerID, IntentScore: 20},
		domain.Lead{ID: uuid.New(), OwnerID: ownerID, IntentScore: 30},
	)

	leads, err := newTestService(repo).ListRanked(context.Background(), ownerID, 2)
	if err != nil {
		t.Fatalf("ListRanked: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("len = %d, want 2", len(leads))
	}
}

func TestScoreLeadPersistsScores(t *testing.T) {
	ownerID := uuid.New()
	lead := domain.Lead{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Title:   "CEO",
		Source:  domain.SourceWebsite,
		Status:  domain.StatusQualified,
	}
	repo := newStubRepo(lead)

	result, err := newTestService(repo).ScoreLead(context.Background(), ownerID, lead.ID)
	if err != nil {
		t.Fatalf("ScoreLead: %v", err)
	}
	if result.IntentScore == 0 {
		t.Fatalf("expected non-zero intent for a qualified website lead")
	}
	if repo.leads[lead.ID].IntentScore != result.IntentScore {
		t.Fatalf("scores not persisted")
	}
	if result.ScoreVersion != scoring.ScoreVersion {
		t.Fatalf("ScoreVersion = %q", result.ScoreVersion)
	}
}

func TestScoreLeadForeignOwnerLooksMissing(t *testing.T) {
	lead := domain.Lead{ID: uuid.New(), OwnerID: uuid.New()}
	svc := newTestService(newStubRepo(lead))

	_, err := svc.ScoreLead(context.Background(), uuid.New(), lead.ID)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestScoreLeadUnknownID(t *testing.T) {
	svc := newTestService(newStubRepo())

	_, err := svc.ScoreLead(context.Background(), uuid.New(), uuid.New())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestRescoreReportsSummary(t *testing.T) {
	ownerID := uuid.New()
	repo := newStubRepo(
		domain.Lead{ID: uuid.New(), OwnerID: ownerID, Title: "CEO"},
		domain.Lead{ID: uuid.New(), OwnerID: ownerID, Title: "Marketing Manager"},
	)

	resp, err := newTestService(repo).Rescore(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}
	if !resp.Success {
		t.Fatalf("Success = false")
	}
	if resp.TotalLeads != 2 || resp.UpdatedLeads != 2 {
		t.Fatalf("summary = %+v, want 2/2", resp)
	}
	if len(resp.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", resp.Failures)
	}
}
