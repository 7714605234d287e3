// Package fanout runs independent application-layer calls concurrently with
// bounded parallelism. Results come back in task order so callers can match
// each error to the call that produced it.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Task is one unit of concurrent work. It writes its own result through a
// closure and reports only the error.
type Task func(ctx context.Context) error

// Run executes tasks using at most maxWorkers goroutines at a time and
// returns one error slot per task, in task order.
//
// A task still waiting for a worker slot when ctx is canceled records
// ctx.Err() and is never started. Started tasks run to completion and are
// expected to observe ctx themselves.
//
// Run blocks until every task has finished. maxWorkers below 1 is treated
// as 1.
func Run(ctx context.Context, maxWorkers int, tasks ...Task) []error {
	errs := make([]error, len(tasks))
	if len(tasks) == 0 {
		return errs
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, task := range tasks {
		wg.Add(1)
		go func(idx int, fn Task) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			}

			errs[idx] = fn(ctx)
		}(i, task)
	}

	wg.Wait()
	return errs
}

// All is Run followed by errors.Join: nil when every task succeeded.
// The first failure cancels the context handed to tasks that have not
// finished yet.
func All(ctx context.Context, maxWorkers int, tasks ...Task) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wrapped := make([]Task, len(tasks))
	for i, task := range tasks {
		wrapped[i] = func(ctx context.Context) error {
			err := task(ctx)
			if err != nil {
				cancel()
			}
			return err
		}
	}

	errs := Run(ctx, maxWorkers, wrapped...)

	// Tasks skipped because a sibling failed only echo the cancellation.
	var failed []error
	for _, err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			failed = append(failed, err)
		}
	}
	if len(failed) == 0 {
		for _, err := range errs {
			if err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Join(failed...)
}
