package background

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
)

type stubDistributionRepo struct {
	events  []*domain.DistributionEvent
	listErr error
}

func (r *stubDistributionRepo) CreateDistribution(event *domain.DistributionEvent) error {
	r.events = append(r.events, event)
	return nil
}

func (r *stubDistributionRepo) GetDistributionByID(distributionID string) (*domain.DistributionEvent, error) {
	for _, e := range r.events {
		if e.ID == distributionID {
			return e, nil
		}
	}
	return nil, domain.ErrUnknownReference
}

func (r *stubDistributionRepo) GetDistributionsByTenantID(tenantID string) ([]*domain.DistributionEvent, error) {
	return r.events, nil
}

func (r *stubDistributionRepo) GetDistributions() ([]*domain.DistributionEvent, error) {
	return r.events, nil
}

func (r *stubDistributionRepo) GetSuccessfulDistributionIDs() ([]string, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var ids []string
	for _, e := range r.events {
		if e.Outcome == domain.OutcomeSuccess {
			ids = append(ids, e.ID)
		}
	}
	return ids, nil
}

func (r *stubDistributionRepo) AddViews(distributionID string, delta int64) error {
	for _, e := range r.events {
		if e.ID == distributionID {
			e.ViewCount += delta
			return nil
		}
	}
	return domain.ErrUnknownReference
}

func newTestSimulator(repo *stubDistributionRepo) *TrafficSimulator {
	s := NewTrafficSimulator(repo, time.Second, 500, nil)
	s.rng = rand.New(rand.NewSource(1))
	return s
}

func TestTickOnlyIncreasesCounters(t *testing.T) {
	repo := &stubDistributionRepo{}
	repo.CreateDistribution(&domain.DistributionEvent{ID: "d1", ViewCount: 100, Outcome: domain.OutcomeSuccess})
	repo.CreateDistribution(&domain.DistributionEvent{ID: "d2", ViewCount: 0, Outcome: domain.OutcomeSuccess})
	repo.CreateDistribution(&domain.DistributionEvent{ID: "d3", ViewCount: 50, Outcome: domain.OutcomeFailed})

	s := newTestSimulator(repo)
	for i := 0; i < 20; i++ {
		if err := s.tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}

	d1, _ := repo.GetDistributionByID("d1")
	d2, _ := repo.GetDistributionByID("d2")
	d3, _ := repo.GetDistributionByID("d3")
	if d1.ViewCount < 100 || d2.ViewCount < 0 {
		t.Fatalf("counters must never shrink: d1=%d d2=%d", d1.ViewCount, d2.ViewCount)
	}
	if d3.ViewCount != 50 {
		t.Fatalf("failed distribution must never be touched, got %d", d3.ViewCount)
	}
}

func TestTickReturnsRepositoryError(t *testing.T) {
	wantErr := errors.New("db down")
	repo := &stubDistributionRepo{listErr: wantErr}

	s := newTestSimulator(repo)
	if err := s.tick(); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
