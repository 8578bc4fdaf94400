package renderer

import (
	"context"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Ctx        context.Context
	Tile       *Tile
	PixelStats [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID  int
	Samples int
	Error   error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup

	mu      sync.Mutex
	started bool
	closed  bool
}

// Worker renders tiles pulled from the shared task queue
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   <-chan TileTask
	resultQueue chan<- TileResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// queueSize should be at least the number of tiles in a pass so a pass can be
// submitted without blocking.
func NewWorkerPool(raytracer *Raytracer, numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, queueSize),
		resultQueue: make(chan TileResult, queueSize),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Calling it more than once has no effect.
func (wp *WorkerPool) Start() {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	if wp.started || wp.closed {
		return
	}
	wp.started = true

	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers. Tasks already queued are finished first.
func (wp *WorkerPool) Stop() {
	wp.mu.Lock()
	if wp.closed {
		wp.mu.Unlock()
		return
	}
	wp.closed = true
	close(wp.taskQueue)
	wp.mu.Unlock()

	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) error {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	if wp.closed {
		return ErrWorkerPoolClosed
	}
	wp.taskQueue <- task
	return nil
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Tiles never overlap, so writing to the shared stats array is safe
		samples, err := w.raytracer.RenderBounds(task.Ctx, task.Tile.Bounds, task.PixelStats, task.Tile.Sampler)
		w.resultQueue <- TileResult{
			TileID:  task.Tile.ID,
			Samples: samples,
			Error:   err,
		}
	}
}
