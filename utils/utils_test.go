package utils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const effectsFile = `{"inPath": "creek.png", "outPath": "creek_out.png", "effects": ["G", "rotate:1"]}
{"inPath": "moon.bmp", "outPath": "moon_out.bmp", "effects": ["negate"]}
`

func TestCreateTasks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "effects.txt")
	require.NoError(t, os.WriteFile(path, []byte(effectsFile), 0o644))

	tq, err := CreateTasks(path, "in", "out", "small+big")
	require.NoError(t, err)
	assert.Equal(t, []Task{
		{filepath.Join("in", "small", "creek.png"), filepath.Join("out", "small_creek_out.png"), []string{"G", "rotate:1"}},
		{filepath.Join("in", "big", "creek.png"), filepath.Join("out", "big_creek_out.png"), []string{"G", "rotate:1"}},
		{filepath.Join("in", "small", "moon.bmp"), filepath.Join("out", "small_moon_out.bmp"), []string{"negate"}},
		{filepath.Join("in", "big", "moon.bmp"), filepath.Join("out", "big_moon_out.bmp"), []string{"negate"}},
	}, tq.Tasks)
}

func TestCreateTasksErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := CreateTasks(filepath.Join(dir, "missing.txt"), "in", "out", "s")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadTasks(strings.NewReader(`{"inPath": 3}`))
	assert.Error(t, err)
}

func TestTaskQueueConcurrentDequeue(t *testing.T) {
	tq := NewTaskQueue()
	for i := 0; i < 100; i++ {
		tq.Enqueue(Task{InPath: strings.Repeat("x", i)})
	}
	require.Equal(t, 100, tq.Len())

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := tq.Dequeue(); task != nil; task = tq.Dequeue() {
				mu.Lock()
				seen[task.InPath] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 100)
	assert.Nil(t, tq.Dequeue())
}

func TestWriteToFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench", "results.txt")
	require.NoError(t, WriteToFile(path, "a\n"))
	require.NoError(t, WriteToFile(path, "b\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}
