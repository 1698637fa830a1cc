package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// OverdueSweeper runs PaymentPlanService.MarkOverdue on a fixed interval.
type OverdueSweeper struct {
	plans    PaymentPlanService
	interval time.Duration
	log      *zap.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOverdueSweeper(plans PaymentPlanService, interval time.Duration, log *zap.Logger) *OverdueSweeper {
	return &OverdueSweeper{plans: plans, interval: interval, log: log}
}

// Start is a no-op when the interval is not positive.
func (s *OverdueSweeper) Start() {
	if s.interval <= 0 {
		s.log.Info("overdue sweep disabled")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
	s.log.Info("overdue sweep started", zap.Duration("interval", s.interval))
}

func (s *OverdueSweeper) sweep(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	if _, err := s.plans.MarkOverdue(ctx); err != nil {
		s.log.Error("overdue sweep failed", zap.Error(err))
	}
}

func (s *OverdueSweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}
