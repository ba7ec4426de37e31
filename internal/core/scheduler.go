package core

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/om607397-wq/namaa/internal/observe"
	"github.com/om607397-wq/namaa/internal/tracker"
)

// Scheduler owns the two background timers: the periodic auto-upload while a
// session is active, and the midnight-rollover detector. One task, one
// explicit cancellation handle.
type Scheduler struct {
	sync     SyncService
	sessions *SessionManager
	trk      *tracker.Service
	interval time.Duration
	log      *zap.Logger
	metrics  *observe.Metrics

	mu         sync.Mutex
	cancel     context.CancelFunc
	done       chan struct{}
	onRollover []func(oldKey, newKey string)
}

// NewScheduler builds a scheduler ticking every interval (zero means 60s).
func NewScheduler(
	syncSvc SyncService,
	sessions *SessionManager,
	trk *tracker.Service,
	interval time.Duration,
	log *zap.Logger,
	metrics *observe.Metrics,
) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{
		sync:     syncSvc,
		sessions: sessions,
		trk:      trk,
		interval: interval,
		log:      log,
		metrics:  metrics,
	}
}

// OnRollover registers fn to run when the local calendar day changes.
// Must be called before Start.
func (s *Scheduler) OnRollover(fn func(oldKey, newKey string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRollover = append(s.onRollover, fn)
}

// Start launches the background loop. Calling Start on a running scheduler
// is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	go s.run(ctx, done)
}

// Stop cancels the loop and waits for it to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	lastDay := s.trk.TodayKey()
	s.log.Info("scheduler started", zap.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			// Final best-effort upload so a shutdown never loses the
			// last interval's changes.
			s.autoUpload(context.Background())
			s.log.Info("scheduler stopped")
			return
		case <-ticker.C:
			if today := s.trk.TodayKey(); today != lastDay {
				s.metrics.DayRollovers.Inc()
				s.log.Info("day rollover detected",
					zap.String("from", lastDay), zap.String("to", today))
				s.mu.Lock()
				listeners := append([]func(string, string){}, s.onRollover...)
				s.mu.Unlock()
				for _, fn := range listeners {
					fn(lastDay, today)
				}
				lastDay = today
			}
			s.autoUpload(ctx)
		}
	}
}

// autoUpload pushes a snapshot when signed in. Failures are logged and
// swallowed; the next tick retries naturally.
func (s *Scheduler) autoUpload(ctx context.Context) {
	if _, ok := s.sessions.Current(); !ok {
		return
	}
	s.metrics.AutoSyncTicks.Inc()
	if err := s.sync.Upload(ctx); err != nil {
		s.log.Warn("auto-sync upload failed", zap.Error(err))
	}
}
