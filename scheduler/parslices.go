package scheduler

import (
	"time"

	"proj1/effects"
	"proj1/utils"
)

// RunParallelSlices processes one image at a time, splitting the rows of every
// effect into 'config.ThreadCount' bands handled by separate goroutines.
func RunParallelSlices(config Config, taskQueue *utils.TaskQueue, env *effects.Env) (Result, error) {
	startTime := time.Now()
	nThreads := max(config.ThreadCount, 1)

	// cumulative time of all parallel sections
	var totalParallelTime time.Duration
	for i := range taskQueue.Tasks {
		elapsed, err := processTask(&taskQueue.Tasks[i], nThreads, env)
		if err != nil {
			return Result{}, err
		}
		totalParallelTime += elapsed
	}

	return Result{
		Threads:      nThreads,
		TimeElapsed:  time.Since(startTime).Seconds(),
		TimeParallel: totalParallelTime.Seconds(),
	}, nil
}
