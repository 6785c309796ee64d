package scheduler

import (
	"time"

	"proj1/effects"
	"proj1/utils"
)

// RunSequential loads each image, applies its effects and saves it, one task at a time.
func RunSequential(config Config, taskQueue *utils.TaskQueue, env *effects.Env) (Result, error) {
	startTime := time.Now()

	for i := range taskQueue.Tasks {
		if _, err := processTask(&taskQueue.Tasks[i], 1, env); err != nil {
			return Result{}, err
		}
	}

	return Result{Threads: 1, TimeElapsed: time.Since(startTime).Seconds()}, nil
}
