package scheduler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"proj1/constants"
	"proj1/effects"
	"proj1/picture"
	"proj1/resources"
	"proj1/utils"
)

type Config struct {
	DataDirs    string // Represents the data directories to use to load the images.
	Mode        string // Represents which scheduler scheme to use
	ThreadCount int    // Runs parallel version with the specified number of threads
	EffectsPath string // JSON stream of tasks
	InDir       string // Root of the data directories
	OutDir      string // Where processed images are written
	GlyphDir    string // Bitmaps used by the "ascii" effect
	ResultsPath string // Timing results are appended here, one JSON object per run
}

// DefaultConfig returns a sequential configuration using the default data layout.
func DefaultConfig() Config {
	return Config{
		Mode:        "s",
		ThreadCount: 1,
		EffectsPath: constants.EffectsPathFile,
		InDir:       constants.InDir,
		OutDir:      constants.OutDir,
		GlyphDir:    constants.GlyphDir,
		ResultsPath: constants.ResultsPath,
	}
}

// Result is the timing record written to the results file after every run.
type Result struct {
	Mode         string  `json:"mode"`
	Threads      int     `json:"threads"`
	TimeElapsed  float64 `json:"timeElapsed"`
	TimeParallel float64 `json:"timeParallel"`
	DataDir      string  `json:"datadir"`
}

// Schedule runs the version selected by the Mode field of the configuration.
func Schedule(config Config) error {
	run, ok := modes[config.Mode]
	if !ok {
		return fmt.Errorf("invalid scheduling scheme %q", config.Mode)
	}

	taskQueue, err := utils.CreateTasks(config.EffectsPath, config.InDir, config.OutDir, config.DataDirs)
	if err != nil {
		return err
	}
	slog.Info("starting run", "mode", config.Mode, "threads", config.ThreadCount, "tasks", len(taskQueue.Tasks))

	env := effects.NewEnv(nil, resources.Dir(config.GlyphDir))
	result, err := run(config, taskQueue, env)
	if err != nil {
		return err
	}
	result.Mode = config.Mode
	result.DataDir = config.DataDirs

	slog.Info("run finished", "mode", result.Mode, "threads", result.Threads,
		"elapsed", result.TimeElapsed, "parallel", result.TimeParallel)
	return writeResult(config.ResultsPath, result)
}

type runFunc func(config Config, taskQueue *utils.TaskQueue, env *effects.Env) (Result, error)

var modes = map[string]runFunc{
	"s":         RunSequential,
	"parfiles":  RunParallelFiles,
	"parslices": RunParallelSlices,
}

func writeResult(path string, result Result) error {
	if path == "" {
		return nil
	}
	line, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return utils.WriteToFile(path, string(line)+"\n")
}

// processTask loads the image of 'task', applies its effects splitting rows
// across 'workers' goroutines, and saves the output. Returns the time spent
// applying effects.
func processTask(task *utils.Task, workers int, env *effects.Env) (time.Duration, error) {
	effectList, err := effects.ParseAll(task.Effects)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", task.InPath, err)
	}

	img, err := picture.Load(task.InPath)
	if err != nil {
		return 0, fmt.Errorf("loading image: %w", err)
	}
	img.SetWorkers(workers)

	// backgrounds are looked up next to the input image
	taskEnv := env.WithImages(resources.Dir(filepath.Dir(task.InPath)))

	start := time.Now()
	out, err := effects.ApplyAll(img, effectList, taskEnv)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", task.InPath, err)
	}
	elapsed := time.Since(start)

	if err := os.MkdirAll(filepath.Dir(task.OutPath), 0o755); err != nil {
		return 0, err
	}
	if err := out.Save(task.OutPath); err != nil {
		return 0, fmt.Errorf("saving image: %w", err)
	}
	slog.Debug("task done", "in", task.InPath, "out", task.OutPath, "effects", len(effectList), "elapsed", elapsed)
	return elapsed, nil
}
