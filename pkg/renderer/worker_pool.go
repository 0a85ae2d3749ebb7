package renderer

import (
	"fmt"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile       *Tile
	PixelStats [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID int
	Stats  RenderStats
	Error  error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks sizes the queues so that submitting never blocks.
func NewWorkerPool(raytracer *Raytracer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
	}

	// The raytracer is read-only during a render, so workers share it
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

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
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

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		result := TileResult{TileID: task.Tile.ID}
		if err := checkTaskBounds(task); err != nil {
			result.Error = err
		} else {
			// Each tile has non-overlapping bounds, so writing to the shared array is safe
			result.Stats = w.raytracer.RenderTile(task.Tile, task.PixelStats)
		}
		w.resultQueue <- result
	}
}

// checkTaskBounds rejects tiles that fall outside the pixel stats array
func checkTaskBounds(task TileTask) error {
	bounds := task.Tile.Bounds
	if bounds.Min.X < 0 || bounds.Min.Y < 0 || bounds.Max.Y > len(task.PixelStats) {
		return fmt.Errorf("tile %d bounds %v exceed image height %d", task.Tile.ID, bounds, len(task.PixelStats))
	}
	if bounds.Empty() {
		return nil
	}
	if bounds.Max.X > len(task.PixelStats[bounds.Min.Y]) {
		return fmt.Errorf("tile %d bounds %v exceed image width %d", task.Tile.ID, bounds, len(task.PixelStats[bounds.Min.Y]))
	}
	return nil
}
