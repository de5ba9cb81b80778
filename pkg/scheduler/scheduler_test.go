package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/scheduler/mocks"
)

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(Params{})
	assert.Equal(t, time.Minute, s.interval)
	assert.NotNil(t, s.now)
	assert.NotNil(t, s.onWarmup)
	s.onWarmup(domain.EventStatus{WorldEvent: domain.WorldEvent{Name: "x"}}) // default logs only
}

func TestScheduler_Tick(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 1, 0, 0, time.UTC)
	events := &mocks.ResetterMock{CheckResetFunc: func(time.Time) (bool, error) { return true, nil }}
	dungeons := &mocks.ResetterMock{CheckResetFunc: func(time.Time) (bool, error) { return false, errors.New("disk full") }}
	warm := domain.EventStatus{WorldEvent: domain.WorldEvent{Name: "Tequatl"}, State: domain.EventWarmup}
	warmups := &mocks.WarmupSourceMock{WarmupNotificationsFunc: func(time.Time) []domain.EventStatus {
		return []domain.EventStatus{warm}
	}}
	var got []domain.EventStatus
	s := NewScheduler(Params{
		Resetters: []Resetter{events, dungeons},
		Warmups:   warmups,
		OnWarmup:  func(ev domain.EventStatus) { got = append(got, ev) },
		Now:       func() time.Time { return now },
	})

	s.Tick()
	require.Len(t, events.CheckResetCalls(), 1)
	assert.Equal(t, now, events.CheckResetCalls()[0].Now)
	require.Len(t, dungeons.CheckResetCalls(), 1, "failed resetter doesn't stop others")
	require.Len(t, warmups.WarmupNotificationsCalls(), 1)
	assert.Equal(t, []domain.EventStatus{warm}, got)
}

func TestScheduler_StartStop(t *testing.T) {
	var calls atomic.Int32
	r := &mocks.ResetterMock{CheckResetFunc: func(time.Time) (bool, error) {
		calls.Add(1)
		return false, nil
	}}
	s := NewScheduler(Params{Resetters: []Resetter{r}, Interval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	stopped := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load(), "no checks after stop")
}
