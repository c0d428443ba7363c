package poller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"fantasy-hud-service/internal/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubTask struct {
	name   string
	calls  atomic.Int32
	notify chan struct{}

	mu  sync.Mutex
	err error
}

func (s *stubTask) Name() string { return s.name }

func (s *stubTask) Sync(ctx context.Context) error {
	_ = ctx
	s.calls.Add(1)
	if s.notify != nil {
		select {
		case s.notify <- struct{}{}:
		default:
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *stubTask) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func waitForCall(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for sync")
	}
}

func TestPollerRunsInitialSyncAndTicks(t *testing.T) {
	task := &stubTask{name: "trending", notify: make(chan struct{}, 8)}
	rec := metrics.NewRecorder()
	p := New(task, nil, rec, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	waitForCall(t, task.notify) // initial
	waitForCall(t, task.notify) // first tick
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}

	if task.calls.Load() < 2 {
		t.Fatalf("expected interval-driven sync, got %d calls", task.calls.Load())
	}
	if rec.SyncCycles("trending").Cycles < 2 {
		t.Fatalf("expected cycles recorded, got %+v", rec.SyncCycles("trending"))
	}
}

func TestPollerNoSyncsAfterStop(t *testing.T) {
	task := &stubTask{name: "directory", notify: make(chan struct{}, 1)}
	p := New(task, nil, nil, 5*time.Millisecond)
	p.Start(context.Background())
	waitForCall(t, task.notify)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}

	callsAfterStop := task.calls.Load()
	time.Sleep(30 * time.Millisecond)
	if task.calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional syncs after stop; before=%d after=%d", callsAfterStop, task.calls.Load())
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	task := &stubTask{name: "trending", notify: make(chan struct{}, 1)}
	p := New(task, nil, nil, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)
	waitForCall(t, task.notify)
	cancel()

	// The loop exits on its own; Stop only waits for it.
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&stubTask{name: "t"}, nil, nil, time.Hour)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestPollerStartAfterStopIsNoop(t *testing.T) {
	task := &stubTask{name: "t"}
	p := New(task, nil, nil, time.Hour)
	_ = p.Stop(context.Background())
	p.Start(context.Background())
	time.Sleep(10 * time.Millisecond)
	if task.calls.Load() != 0 {
		t.Fatalf("expected no sync after stop, got %d", task.calls.Load())
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	task := &stubTask{name: "t", notify: make(chan struct{}, 4)}
	p := New(task, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx) // should no-op
	waitForCall(t, task.notify)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
	if task.calls.Load() != 1 {
		t.Fatalf("expected one initial sync, got %d", task.calls.Load())
	}
}

func TestPollerDefaultsInterval(t *testing.T) {
	p := New(&stubTask{name: "t"}, nil, nil, 0)
	if p.interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, p.interval)
	}
}

func TestPollerStartReturnsWhenAlreadyStarted(t *testing.T) {
	p := New(&stubTask{name: "t"}, nil, nil, time.Hour)
	p.started = true
	p.Start(context.Background())
	if p.ticker != nil {
		t.Fatalf("expected ticker not to be created when already started")
	}
}

func TestPollerStopHonorsContextWhileWaiting(t *testing.T) {
	block := make(chan struct{})
	task := &blockingTask{started: make(chan struct{}), release: block}
	p := New(task, nil, nil, time.Hour)
	p.Start(context.Background())
	<-task.started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := p.Stop(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected stop to give up at deadline, got %v", err)
	}

	close(block)
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("expected loop to exit once released, got %v", err)
	}
}

type blockingTask struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingTask) Name() string { return "blocking" }

// Sync ignores ctx so Stop has something to wait for.
func (b *blockingTask) Sync(ctx context.Context) error {
	_ = ctx
	close(b.started)
	<-b.release
	return nil
}

func TestPollerStatusTracksFailuresAndSuccess(t *testing.T) {
	task := &stubTask{name: "t", err: errors.New("boom")}
	p := New(task, nil, nil, time.Millisecond)
	ctx := context.Background()

	p.fetchOnce(ctx)
	status := p.Status()
	if status.ConsecutiveFailures != 1 {
		t.Fatalf("expected 1 failure, got %d", status.ConsecutiveFailures)
	}
	if status.LastError == "" {
		t.Fatalf("expected last error recorded")
	}
	if status.LastSuccess != (time.Time{}) {
		t.Fatalf("expected no success recorded yet")
	}
	if status.IsReady() {
		t.Fatalf("expected not ready after failure")
	}

	task.setErr(nil)
	p.fetchOnce(ctx)
	status = p.Status()
	if status.ConsecutiveFailures != 0 {
		t.Fatalf("expected failures reset, got %d", status.ConsecutiveFailures)
	}
	if status.LastSuccess.IsZero() {
		t.Fatalf("expected success timestamp")
	}
	if !status.IsReady() {
		t.Fatalf("expected ready after success")
	}
}

func TestStatusNotReadyAfterRepeatedFailures(t *testing.T) {
	status := Status{LastSuccess: time.Now(), ConsecutiveFailures: readyFailureThreshold}
	if status.IsReady() {
		t.Fatal("expected not ready after threshold failures")
	}
	status.ConsecutiveFailures = readyFailureThreshold - 1
	if !status.IsReady() {
		t.Fatal("expected ready below threshold")
	}
}

func TestPollerLogsOnErrorAndSuccess(t *testing.T) {
	task := &stubTask{name: "t", err: errors.New("fail")}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	p := New(task, logger, nil, time.Second)
	p.fetchOnce(context.Background()) // should log error

	task.setErr(nil)
	p.fetchOnce(context.Background()) // should log info
	if p.Name() != "t" {
		t.Fatalf("expected task name, got %q", p.Name())
	}
}
