// Package scanner pushes many URLs through the analysis pipeline using a
// bounded pool of workers. Used by the bulk `scan` command.
package scanner

import (
	"context"
	"fmt"
	"sync"

	"github.com/linkvet/linkvet/internal/analyzer"
)

// Task is a single URL queued for analysis.
type Task struct {
	Raw  string
	Line int
}

// TaskResult pairs a task with its outcome. Err is set when the input was
// rejected by admission or the analysis was canceled.
type TaskResult struct {
	Err    error
	Result *analyzer.Result
	Task   Task
}

// Pool manages parallel analysis of queued tasks.
type Pool struct {
	ctx        context.Context
	cancel     context.CancelFunc
	analyzer   *analyzer.Analyzer
	tasks      chan Task
	results    chan TaskResult
	wg         sync.WaitGroup
	numWorkers int
}

// NewPool creates a pool running numWorkers concurrent analyses.
func NewPool(a *analyzer.Analyzer, numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = 4
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		ctx:        ctx,
		cancel:     cancel,
		analyzer:   a,
		numWorkers: numWorkers,
		tasks:      make(chan Task, numWorkers*2),
		results:    make(chan TaskResult, numWorkers*2),
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}

			p.process(task)
		}
	}
}

func (p *Pool) process(task Task) {
	if !analyzer.IsValid(task.Raw) {
		p.results <- TaskResult{Task: task, Err: fmt.Errorf("line %d: invalid URL", task.Line)}
		return
	}

	result, err := p.analyzer.Analyze(p.ctx, task.Raw)
	p.results <- TaskResult{Task: task, Result: result, Err: err}
}

// Submit queues a task; blocks when all workers are busy and the buffer is
// full.
func (p *Pool) Submit(task Task) {
	p.tasks <- task
}

// Close signals that no more tasks will be submitted.
func (p *Pool) Close() {
	close(p.tasks)
}

// Results returns the channel task outcomes are delivered on.
func (p *Pool) Results() <-chan TaskResult {
	return p.results
}

// Wait blocks until all workers have drained the queue, then closes the
// results channel.
func (p *Pool) Wait() {
	p.wg.Wait()
	close(p.results)
}

// Stop aborts in-flight work.
func (p *Pool) Stop() {
	p.cancel()
}
