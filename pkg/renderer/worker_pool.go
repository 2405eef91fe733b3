package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultWorkerMultiplier is the number of workers started per CPU when none is configured
const DefaultWorkerMultiplier = 2

// BandTask represents a band rendering task for the worker pool
type BandTask struct {
	Band   Band
	Pixels []core.Color // The band's exclusive slice of the frame buffer
	TaskID int          // For deterministic ordering
}

// BandResult contains the result from rendering a band
type BandResult struct {
	TaskID int
	Stats  RenderStats
}

// BandJob renders one task. It must only write to the task's pixels.
type BandJob func(task BandTask) RenderStats

// WorkerPool runs band tasks in parallel, one goroutine per task
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool. A non-positive count means NumCPU * DefaultWorkerMultiplier.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU() * DefaultWorkerMultiplier
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run executes every task concurrently and blocks until all have finished.
// Results are returned in task order regardless of completion order.
func (wp *WorkerPool) Run(tasks []BandTask, job BandJob, onDone func(BandResult)) []BandResult {
	resultQueue := make(chan BandResult, len(tasks))
	var wg sync.WaitGroup

	for _, task := range tasks {
		wg.Add(1)
		go func(task BandTask) {
			defer wg.Done()
			resultQueue <- BandResult{TaskID: task.TaskID, Stats: job(task)}
		}(task)
	}

	go func() {
		wg.Wait()
		close(resultQueue)
	}()

	results := make([]BandResult, len(tasks))
	for result := range resultQueue {
		if onDone != nil {
			onDone(result)
		}
		results[result.TaskID] = result
	}
	return results
}
