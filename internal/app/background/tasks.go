package background

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/metrics"
)

// TrafficSimulator stands in for real platform analytics: on a fixed
// interval it grows view counters on a random subset of successful
// distributions. Counters only ever move up. A failed cycle is logged
// and skipped; it must never take the process down.
type TrafficSimulator struct {
	DistributionRepo domain.DistributionRepository
	Interval         time.Duration
	MaxViewsPerTick  int64
	Metrics          *metrics.RevenueMetrics

	rng *rand.Rand
}

func NewTrafficSimulator(
	distributionRepo domain.DistributionRepository,
	interval time.Duration,
	maxViewsPerTick int64,
	revenueMetrics *metrics.RevenueMetrics) *TrafficSimulator {

	return &TrafficSimulator{
		DistributionRepo: distributionRepo,
		Interval:         interval,
		MaxViewsPerTick:  maxViewsPerTick,
		Metrics:          revenueMetrics,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *TrafficSimulator) Start(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.tick(); err != nil {
				log.Printf("traffic tick skipped: %v", err)
				if s.Metrics != nil {
					s.Metrics.RecordTrafficTickError()
				}
			}
		}
	}
}

func (s *TrafficSimulator) tick() error {
	ids, err := s.DistributionRepo.GetSuccessfulDistributionIDs()
	if err != nil {
		return err
	}

	var added int64
	for _, id := range ids {
		if s.rng.Intn(2) == 0 {
			continue
		}
		delta := s.rng.Int63n(s.MaxViewsPerTick + 1)
		if delta == 0 {
			continue
		}
		if err := s.DistributionRepo.AddViews(id, delta); err != nil {
			return err
		}
		added += delta
	}

	if s.Metrics != nil {
		s.Metrics.RecordTrafficTick(added)
	}
	return nil
}
