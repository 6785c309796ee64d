// Computes the best times and speedups of the editor runs recorded in the
// results file and plots the speedups of every mode.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"proj1/constants"
	"proj1/scheduler"
)

// times per mode, data directory and number of threads,
// e.g. times["parfiles"]["big"][4]
type timeTable map[string]map[string]map[int]float64

func (t timeTable) set(mode, dataDir string, threads int, v float64) {
	if t[mode] == nil {
		t[mode] = make(map[string]map[int]float64)
	}
	if t[mode][dataDir] == nil {
		t[mode][dataDir] = make(map[int]float64)
	}
	t[mode][dataDir][threads] = v
}

// ParseResults decodes the results file, grouping the runs by mode.
func ParseResults(r io.Reader) (map[string][]scheduler.Result, error) {
	decoder := json.NewDecoder(r)
	dataSets := make(map[string][]scheduler.Result)
	for {
		var data scheduler.Result
		if err := decoder.Decode(&data); err != nil {
			if errors.Is(err, io.EOF) {
				return dataSets, nil
			}
			return nil, err
		}
		dataSets[data.Mode] = append(dataSets[data.Mode], data)
	}
}

// ComputeBestTimes returns the lowest total time of each mode, data directory
// and number of threads.
func ComputeBestTimes(dataSets map[string][]scheduler.Result) timeTable {
	best := make(timeTable)
	for mode, runs := range dataSets {
		for _, run := range runs {
			current, seen := best[mode][run.DataDir][run.Threads]
			if !seen || run.TimeElapsed < current {
				best.set(mode, run.DataDir, run.Threads, run.TimeElapsed)
			}
		}
	}
	return best
}

// ComputeSpeedups divides the sequential time of each data directory by the
// time of every parallel run on it. Data directories without a sequential run
// are skipped.
func ComputeSpeedups(times timeTable) timeTable {
	speedups := make(timeTable)
	for mode, byDir := range times {
		if mode == "s" {
			continue
		}
		for dataDir, byThreads := range byDir {
			sequential, ok := times["s"][dataDir][1]
			if !ok {
				continue
			}
			for threads, elapsed := range byThreads {
				if elapsed > 0 {
					speedups.set(mode, dataDir, threads, sequential/elapsed)
				}
			}
		}
	}
	return speedups
}

func run(resultsPath, outDir string) error {
	file, err := os.Open(resultsPath)
	if err != nil {
		return err
	}
	defer file.Close()

	dataSets, err := ParseResults(file)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", resultsPath, err)
	}
	speedups := ComputeSpeedups(ComputeBestTimes(dataSets))

	data, err := json.MarshalIndent(speedups, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "speedups.txt"), data, 0o644); err != nil {
		return err
	}

	for mode, byDir := range speedups {
		path := filepath.Join(outDir, fmt.Sprintf("speedup-%s.png", mode))
		if err := PlotSpeedups(mode, byDir, path); err != nil {
			return err
		}
		slog.Info("wrote speedup graph", "mode", mode, "path", path)
	}
	return nil
}

func main() {
	resultsPath := constants.ResultsPath
	if len(os.Args) >= 2 {
		resultsPath = os.Args[1]
	}
	if err := run(resultsPath, filepath.Dir(resultsPath)); err != nil {
		slog.Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}
