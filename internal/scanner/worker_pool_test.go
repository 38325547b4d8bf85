package scanner

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/linkvet/linkvet/internal/analyzer"
	"github.com/linkvet/linkvet/pkg/blacklist"
)

func testPool(t *testing.T, workers int) *Pool {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := analyzer.New(blacklist.NewRegistry(), analyzer.DefaultConfig(), logger)

	return NewPool(a, workers)
}

func TestPoolProcessesAllTasks(t *testing.T) {
	pool := testPool(t, 3)
	pool.Start()

	urls := []string{
		"https://example.com/",
		"bit.ly/xyz",
		strings.Repeat("a", 3000), // rejected by admission
		"https://login-example.xyz/verify",
	}

	go func() {
		defer pool.Close()

		for i, raw := range urls {
			pool.Submit(Task{Raw: raw, Line: i + 1})
		}
	}()

	go pool.Wait()

	completed := 0
	rejected := 0

	for res := range pool.Results() {
		switch {
		case res.Err != nil:
			rejected++
		case res.Result == nil:
			t.Errorf("task %d: nil result without error", res.Task.Line)
		default:
			completed++
		}
	}

	if completed != 3 || rejected != 1 {
		t.Errorf("completed=%d rejected=%d, want 3 and 1", completed, rejected)
	}
}

func TestPoolDefaultsWorkerCount(t *testing.T) {
	pool := testPool(t, 0)
	if pool.numWorkers != 4 {
		t.Errorf("numWorkers = %d, want 4", pool.numWorkers)
	}
}

func TestPoolStopDiscardsQueuedWork(t *testing.T) {
	pool := testPool(t, 1)
	pool.Start()
	pool.Stop()

	pool.Close()
	go pool.Wait()

	for range pool.Results() {
	}
}
