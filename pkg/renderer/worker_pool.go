package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/menuan/kektracer/pkg/core"
	"github.com/menuan/kektracer/pkg/framebuffer"
)

// RenderStats summarizes a completed render
type RenderStats struct {
	TotalPixels  int
	TotalSamples int
	Workers      int
	Elapsed      time.Duration
}

// workerPool fans scanline tasks out to render workers. Each worker owns a
// private random source, so no RNG state is shared or contended.
type workerPool struct {
	raytracer  *Raytracer
	bitmap     *framebuffer.Bitmap
	taskQueue  chan int
	numWorkers int
	wg         sync.WaitGroup
}

func newWorkerPool(rt *Raytracer, bmp *framebuffer.Bitmap, numWorkers int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &workerPool{
		raytracer:  rt,
		bitmap:     bmp,
		taskQueue:  make(chan int, rt.height),
		numWorkers: numWorkers,
	}
}

func (wp *workerPool) start(seed int64) {
	for i := 0; i < wp.numWorkers; i++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed + int64(i))))
		wp.wg.Add(1)
		go wp.run(sampler)
	}
}

func (wp *workerPool) run(sampler core.Sampler) {
	defer wp.wg.Done()

	for y := range wp.taskQueue {
		wp.raytracer.renderRow(y, wp.bitmap, sampler)
	}
}

func (wp *workerPool) submit(y int) {
	wp.taskQueue <- y
}

func (wp *workerPool) stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()
}

// Render fills the bitmap with one complete image, distributing scanlines
// across the worker pool. It runs to completion; cancellation belongs to
// the caller's presentation loop, which simply does not render again.
func (rt *Raytracer) Render(bmp *framebuffer.Bitmap) RenderStats {
	start := time.Now()

	pool := newWorkerPool(rt, bmp, rt.numWorkers)
	pool.start(time.Now().UnixNano())
	for y := 0; y < rt.height; y++ {
		pool.submit(y)
	}
	pool.stop()

	return RenderStats{
		TotalPixels:  rt.width * rt.height,
		TotalSamples: rt.width * rt.height * rt.config.SamplesPerPixel,
		Workers:      pool.numWorkers,
		Elapsed:      time.Since(start),
	}
}
