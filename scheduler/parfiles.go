package scheduler

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"proj1/effects"
	"proj1/utils"
)

// executeTasks picks tasks from 'taskQueue' until it is empty and processes them.
// Stops early when another worker of the group failed.
func executeTasks(ctx context.Context, taskQueue *utils.TaskQueue, env *effects.Env) error {
	for task := taskQueue.Dequeue(); task != nil; task = taskQueue.Dequeue() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := processTask(task, 1, env); err != nil {
			return err
		}
	}
	return nil
}

// RunParallelFiles deploys 'config.ThreadCount' goroutines that process whole
// images in parallel, each pulling tasks from the shared queue.
func RunParallelFiles(config Config, taskQueue *utils.TaskQueue, env *effects.Env) (Result, error) {
	startTime := time.Now()

	// if more threads than tasks, use number of tasks
	nThreads := max(min(config.ThreadCount, taskQueue.Len()), 1)

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < nThreads; i++ {
		g.Go(func() error {
			return executeTasks(ctx, taskQueue, env)
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	elapsed := time.Since(startTime).Seconds()
	return Result{Threads: nThreads, TimeElapsed: elapsed, TimeParallel: elapsed}, nil
}
