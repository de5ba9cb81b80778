// Package scheduler runs periodic tracker housekeeping: daily reset checks and warmup notifications.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/tracker"
)

//go:generate moq -out mocks/resetter.go -pkg mocks -skip-ensure -fmt goimports . Resetter
//go:generate moq -out mocks/warmup_source.go -pkg mocks -skip-ensure -fmt goimports . WarmupSource

// Resetter applies the daily reset if it is due
type Resetter interface {
	CheckReset(now time.Time) (bool, error)
}

// WarmupSource reports events which just entered warmup
type WarmupSource interface {
	WarmupNotifications(now time.Time) []domain.EventStatus
}

// Params defines scheduler parameters
type Params struct {
	Resetters []Resetter
	Warmups   WarmupSource                // optional
	OnWarmup  func(ev domain.EventStatus) // optional, logs by default
	Interval  time.Duration
	Now       func() time.Time // optional, for tests
}

// Scheduler periodically checks daily reset and event warmups
type Scheduler struct {
	resetters []Resetter
	warmups   WarmupSource
	onWarmup  func(ev domain.EventStatus)
	interval  time.Duration
	now       func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	res := &Scheduler{
		resetters: params.Resetters,
		warmups:   params.Warmups,
		onWarmup:  params.OnWarmup,
		interval:  params.Interval,
		now:       params.Now,
	}
	if res.interval <= 0 {
		res.interval = time.Minute
	}
	if res.now == nil {
		res.now = time.Now
	}
	if res.onWarmup == nil {
		res.onWarmup = func(ev domain.EventStatus) {
			lgr.Printf("[INFO] %s in %s starts in %v", ev.Name, ev.Map, ev.TimeUntil.Round(time.Second))
		}
	}
	return res
}

// Start begins the scheduler. The first check runs immediately.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.worker(ctx)
	lgr.Printf("[INFO] scheduler started with interval %v, next daily reset at %s", s.interval,
		tracker.NextDailyReset(s.now()).Format(time.RFC3339))
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) worker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick runs all checks once
func (s *Scheduler) Tick() {
	now := s.now()
	for _, r := range s.resetters {
		if _, err := r.CheckReset(now); err != nil {
			lgr.Printf("[WARN] daily reset check failed: %v", err)
		}
	}
	if s.warmups == nil {
		return
	}
	for _, ev := range s.warmups.WarmupNotifications(now) {
		s.onWarmup(ev)
	}
}
