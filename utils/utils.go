package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"proj1/mysync"
)

// Task is a struct containing the information needed to process an image.
// It is used both to parse the effects file and as a task queue element to be processed by workers.
// @inPath: path to the input image
// @outPath: path to the output image
// @effects: effect strings applied in order (see package effects)
type Task struct {
	InPath  string   `json:"inPath"`
	OutPath string   `json:"outPath"`
	Effects []string `json:"effects"`
}

// TaskQueue is a list of tasks guarded by a TAS lock.
// Obs: the sequential scheduler reads Tasks directly, without locking.
type TaskQueue struct {
	mysync.TASLock
	Tasks []Task
}

// NewTaskQueue creates an empty TaskQueue.
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{Tasks: make([]Task, 0)}
}

// Enqueue adds a new task to the queue in thread safe manner
func (tq *TaskQueue) Enqueue(task Task) {
	tq.Lock()
	tq.Tasks = append(tq.Tasks, task)
	tq.Unlock()
}

// Dequeue removes the first Task of the queue in thread safe manner and returns a pointer to it.
// Returns nil when the queue is empty.
func (tq *TaskQueue) Dequeue() *Task {
	tq.Lock()
	defer tq.Unlock()
	if len(tq.Tasks) == 0 {
		return nil
	}
	task := tq.Tasks[0]
	tq.Tasks = tq.Tasks[1:]
	return &task
}

// Len returns the number of queued tasks.
func (tq *TaskQueue) Len() int {
	tq.Lock()
	defer tq.Unlock()
	return len(tq.Tasks)
}

// ReadTasks decodes the stream of JSON task objects of an effects file.
func ReadTasks(r io.Reader) ([]Task, error) {
	decoder := json.NewDecoder(r)
	var tasks []Task
	for {
		var task Task
		if err := decoder.Decode(&task); err != nil {
			if errors.Is(err, io.EOF) {
				return tasks, nil
			}
			return nil, fmt.Errorf("decoding effects file: %w", err)
		}
		tasks = append(tasks, task)
	}
}

// CreateTasks combines the data directories given on the command line with the
// entries of the effects file into a queue of tasks.
// 'dataDirs' lists sub-directories of 'inDir' joined by '+', e.g. "s+b" -> ["s", "b"];
// each effects entry yields one task per directory, written to 'outDir' as "<dir>_<outPath>".
func CreateTasks(effectsPath, inDir, outDir, dataDirs string) (*TaskQueue, error) {
	effectsFile, err := os.Open(effectsPath)
	if err != nil {
		return nil, fmt.Errorf("opening effects file: %w", err)
	}
	defer effectsFile.Close()

	entries, err := ReadTasks(effectsFile)
	if err != nil {
		return nil, err
	}

	dirs := strings.Split(dataDirs, "+")
	tqueue := NewTaskQueue()
	for _, task := range entries {
		for _, dir := range dirs {
			tqueue.Tasks = append(tqueue.Tasks, Task{
				InPath:  filepath.Join(inDir, dir, task.InPath),
				OutPath: filepath.Join(outDir, dir+"_"+task.OutPath),
				Effects: task.Effects,
			})
		}
	}
	return tqueue, nil
}

// WriteToFile appends 'text' to 'filename', creating the file (and its directory) if needed.
func WriteToFile(filename string, text string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.WriteString(text); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
