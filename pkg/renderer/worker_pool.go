package renderer

import (
	"runtime"
	"sync"
)

// rowTask identifies one image row to render
type rowTask struct {
	canvasY  int // Centered canvas row, +H/2 at the top
	rowIndex int // Image row, 0 at the top
}

// rowPool fans image rows out to parallel workers. Each task owns a
// distinct row and per-pixel traces are independent, so workers write
// disjoint regions of the shared image without locking.
type rowPool struct {
	render func(rowTask)
	tasks  chan rowTask
	wg     sync.WaitGroup
}

// newRowPool starts numWorkers goroutines consuming row tasks.
// numWorkers <= 0 uses the CPU count; 1 renders strictly sequentially.
func newRowPool(numWorkers, height int, render func(rowTask)) *rowPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	pool := &rowPool{
		render: render,
		tasks:  make(chan rowTask, height),
	}

	for i := 0; i < numWorkers; i++ {
		pool.wg.Add(1)
		go pool.run()
	}

	return pool
}

// run is the main worker loop
func (p *rowPool) run() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.render(task)
	}
}

// submit queues a row for rendering
func (p *rowPool) submit(task rowTask) {
	p.tasks <- task
}

// wait closes the queue and blocks until all submitted rows are rendered
func (p *rowPool) wait() {
	close(p.tasks)
	p.wg.Wait()
}
