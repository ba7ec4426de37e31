package core

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/om607397-wq/namaa/internal/models"
	"github.com/om607397-wq/namaa/internal/observe"
	"github.com/om607397-wq/namaa/internal/store"
	"github.com/om607397-wq/namaa/internal/tracker"
)

// settableClock lets a test move the calendar day under a running scheduler.
type settableClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *settableClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *settableClock) set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func newSchedulerFixture(t *testing.T, interval time.Duration) (*Scheduler, *fakeSnapshotRepo, *SessionManager, *settableClock) {
	t.Helper()
	clock := &settableClock{t: time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)}
	ns := store.NewNamespace(store.NewMemoryBackend(), zap.NewNop(), observe.New())
	trk := tracker.NewService(ns, clock)
	repo := newFakeSnapshotRepo()
	sessions := NewSessionManager()
	syncSvc := NewSyncService(ns, trk, repo, sessions, nil, time.Second, zap.NewNop(), observe.New())
	sched := NewScheduler(syncSvc, sessions, trk, interval, zap.NewNop(), observe.New())
	return sched, repo, sessions, clock
}

func putCount(repo *fakeSnapshotRepo) int {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.putCalls
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestSchedulerUploadsWhileSignedIn(t *testing.T) {
	sched, repo, sessions, _ := newSchedulerFixture(t, 10*time.Millisecond)
	sessions.Set(models.Identity{UID: "u1", Email: "u1@example.com"})

	sched.Start()
	defer sched.Stop()

	waitFor(t, func() bool { return putCount(repo) >= 2 })
}

func TestSchedulerIdleWhenSignedOut(t *testing.T) {
	sched, repo, _, _ := newSchedulerFixture(t, 10*time.Millisecond)

	sched.Start()
	time.Sleep(60 * time.Millisecond)
	sched.Stop()

	assert.Equal(t, 0, putCount(repo))
}

func TestSchedulerStopFlushesFinalUpload(t *testing.T) {
	sched, repo, sessions, _ := newSchedulerFixture(t, time.Hour)
	sessions.Set(models.Identity{UID: "u1", Email: "u1@example.com"})

	sched.Start()
	sched.Stop()

	// The hour-long ticker never fired; the shutdown path uploaded once.
	assert.Equal(t, 1, putCount(repo))
}

func TestSchedulerDetectsDayRollover(t *testing.T) {
	sched, _, _, clock := newSchedulerFixture(t, 5*time.Millisecond)

	var mu sync.Mutex
	var transitions [][2]string
	sched.OnRollover(func(oldKey, newKey string) {
		mu.Lock()
		transitions = append(transitions, [2]string{oldKey, newKey})
		mu.Unlock()
	})

	sched.Start()
	defer sched.Stop()

	clock.set(time.Date(2025, 3, 11, 0, 0, 1, 0, time.UTC))
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(transitions) > 0
	})

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, transitions)
	assert.Equal(t, [2]string{"2025-03-10", "2025-03-11"}, transitions[0])
}

func TestSchedulerStartAndStopAreIdempotent(t *testing.T) {
	sched, _, _, _ := newSchedulerFixture(t, 10*time.Millisecond)

	sched.Start()
	sched.Start()
	sched.Stop()
	sched.Stop()
}

func TestSchedulerUploadErrorsDoNotStopTheLoop(t *testing.T) {
	sched, repo, sessions, _ := newSchedulerFixture(t, 10*time.Millisecond)
	sessions.Set(models.Identity{UID: "u1", Email: "u1@example.com"})
	repo.putErr = context.DeadlineExceeded

	sched.Start()
	defer sched.Stop()

	waitFor(t, func() bool { return putCount(repo) >= 3 })
}
